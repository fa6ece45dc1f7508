package scenes

import (
	"image/color"
	"log"
	"strings"

	"versusbank/assets"
	"versusbank/engine/input"
	"versusbank/engine/render"
	"versusbank/engine/scene"
)

// HelpScene renders the embedded help page as plain text.
type HelpScene struct {
	ctx   *scene.Context
	lines []string
	prev  map[input.Key]bool
}

func NewHelpScene() *HelpScene {
	return &HelpScene{prev: map[input.Key]bool{}}
}

func (s *HelpScene) Init(ctx *scene.Context) error {
	s.ctx = ctx
	raw, err := assets.Load("help.md")
	if err != nil {
		return err
	}
	s.lines = helpLines(string(raw))
	ctx.Input.On(input.GestureSwipe, func(ev input.GestureEvent) {
		if ctx.Scenes.Current() != Help || ev.Direction != input.DirRight {
			return
		}
		s.back()
	})
	return nil
}

// helpLines strips the markdown markers the 7x13 face cannot style.
func helpLines(src string) []string {
	var out []string
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimRight(line, " ")
		line = strings.TrimLeft(line, "#")
		line = strings.TrimPrefix(line, " ")
		line = strings.TrimPrefix(line, "- ")
		out = append(out, line)
	}
	return out
}

func (s *HelpScene) justPressed(k input.Key) bool {
	down := s.ctx.Input.KeyPressed(k)
	was := s.prev[k]
	s.prev[k] = down
	return down && !was
}

func (s *HelpScene) Update(dt float64) {
	if s.justPressed(input.KeyEscape) || s.justPressed(input.KeyH) {
		s.back()
	}
}

func (s *HelpScene) back() {
	if err := s.ctx.Scenes.SwitchTo(Title, scene.TransitionSlideRight); err != nil {
		log.Printf("help: switch to title: %v", err)
	}
}

func (s *HelpScene) Render(r *render.Renderer) {
	w, h := float64(s.ctx.Width), float64(s.ctx.Height)
	r.DrawRect(0, 0, w, h, vaultBg)
	y := 24.0
	for _, line := range s.lines {
		if line == "" {
			y += render.LineHeight / 2
			continue
		}
		ink := color.Color(paleInk)
		if line == "How to play" || line == "Controls" {
			ink = goldInk
		}
		r.DrawText(line, 16, y, ink)
		y += render.LineHeight
	}
	r.DrawText("swipe right or Esc to go back", 16, h-16, dimInk)
}

func (s *HelpScene) Destroy() {
	clear(s.prev)
}
