package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	texttemplate "text/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

//go:embed shell.html
var shellHTML string

//go:embed sw.js.tmpl
var swJS string

// Site is the sitegen config, read from site.yaml.
type Site struct {
	Title           string `yaml:"title"`
	ShortName       string `yaml:"short_name"`
	Description     string `yaml:"description"`
	ThemeColor      string `yaml:"theme_color"`
	BackgroundColor string `yaml:"background_color"`
	Content         string `yaml:"content"`
	WasmFile        string `yaml:"wasm_file"`
	CacheVersion    int    `yaml:"cache_version"`
}

func LoadSite(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	site := &Site{
		Title:           "VersusBank",
		ShortName:       "VersusBank",
		ThemeColor:      "#161a24",
		BackgroundColor: "#161a24",
		Content:         "content.md",
		WasmFile:        "versusbank.wasm",
		CacheVersion:    1,
	}
	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return site, nil
}

// RenderContent converts the markdown landing copy to sanitized HTML.
// Sanitizing after the markdown pass strips anything the copy tries to
// smuggle through raw HTML blocks.
func RenderContent(md []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(md, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	clean := bluemonday.UGCPolicy().SanitizeBytes(buf.Bytes())
	return template.HTML(clean), nil
}

type manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description,omitempty"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	Orientation     string         `json:"orientation"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Icons           []manifestIcon `json:"icons"`
}

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

func (s *Site) manifest() manifest {
	return manifest{
		Name:            s.Title,
		ShortName:       s.ShortName,
		Description:     s.Description,
		StartURL:        "./",
		Display:         "fullscreen",
		Orientation:     "landscape",
		ThemeColor:      s.ThemeColor,
		BackgroundColor: s.BackgroundColor,
		Icons: []manifestIcon{
			{Src: "icon-192.png", Sizes: "192x192", Type: "image/png"},
			{Src: "icon-512.png", Sizes: "512x512", Type: "image/png"},
		},
	}
}

// Precache lists every file the service worker pins for offline play.
func (s *Site) Precache() []string {
	return []string{
		"./",
		"index.html",
		"manifest.webmanifest",
		"wasm_exec.js",
		s.WasmFile,
		"icon-192.png",
		"icon-512.png",
	}
}

// Generate writes the complete static site into outDir.
func (s *Site) Generate(outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	md, err := os.ReadFile(s.Content)
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}
	body, err := RenderContent(md)
	if err != nil {
		return err
	}

	page, err := s.renderShell(body)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), page, 0644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	mf, err := json.MarshalIndent(s.manifest(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "manifest.webmanifest"), mf, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	sw, err := s.renderServiceWorker()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "sw.js"), sw, 0644); err != nil {
		return fmt.Errorf("write sw.js: %w", err)
	}

	for _, size := range []int{192, 512} {
		name := fmt.Sprintf("icon-%d.png", size)
		if err := writeIcon(filepath.Join(outDir, name), size); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

func (s *Site) renderShell(body template.HTML) ([]byte, error) {
	tmpl, err := template.New("shell").Parse(shellHTML)
	if err != nil {
		return nil, fmt.Errorf("parse shell template: %w", err)
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Site *Site
		Body template.HTML
	}{Site: s, Body: body})
	if err != nil {
		return nil, fmt.Errorf("render shell: %w", err)
	}
	return buf.Bytes(), nil
}

// renderServiceWorker goes through text/template. The worker is plain
// JavaScript, so HTML escaping would corrupt it.
func (s *Site) renderServiceWorker() ([]byte, error) {
	tmpl, err := texttemplate.New("sw").Parse(swJS)
	if err != nil {
		return nil, fmt.Errorf("parse sw template: %w", err)
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Cache    string
		Precache []string
	}{
		Cache:    fmt.Sprintf("%s-v%d", s.ShortName, s.CacheVersion),
		Precache: s.Precache(),
	})
	if err != nil {
		return nil, fmt.Errorf("render sw: %w", err)
	}
	return buf.Bytes(), nil
}
