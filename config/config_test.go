package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"versusbank/engine/asset"
)

func TestDefaultsAreComplete(t *testing.T) {
	c := Default()
	if c.Window.Title != "VersusBank" {
		t.Fatalf("title %q", c.Window.Title)
	}
	if c.Game.BaseWidth != 320 || c.Game.BaseHeight != 240 {
		t.Fatalf("base resolution %dx%d", c.Game.BaseWidth, c.Game.BaseHeight)
	}
	if c.Game.StepMs <= 16.6 || c.Game.StepMs >= 16.7 {
		t.Fatalf("step %v, want 1000/60", c.Game.StepMs)
	}
	if c.Scene.TransitionMs != 500 {
		t.Fatalf("transition %v", c.Scene.TransitionMs)
	}

	opts := c.Input.Options()
	if opts.JoystickRadius != 60 || opts.LongPressDelay != 500*time.Millisecond {
		t.Fatalf("unexpected input options: %+v", opts)
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	cases := []struct {
		name  string
		yaml  string
		check func(t *testing.T, c Config)
	}{
		{
			name: "partial_override_keeps_defaults",
			yaml: "window:\n  title: Other\n",
			check: func(t *testing.T, c Config) {
				if c.Window.Title != "Other" {
					t.Fatalf("title %q", c.Window.Title)
				}
				if c.Game.BaseWidth != 320 {
					t.Fatalf("default lost: %d", c.Game.BaseWidth)
				}
			},
		},
		{
			name: "asset_manifest",
			yaml: "assets:\n  - id: coin\n    type: spritesheet\n    path: sprites/coin.png\n    tile_w: 8\n    tile_h: 8\n",
			check: func(t *testing.T, c Config) {
				if len(c.Assets) != 1 {
					t.Fatalf("assets: %v", c.Assets)
				}
				req := c.Assets[0]
				if req.ID != "coin" || req.Type != asset.TypeSpritesheet || req.TileW != 8 {
					t.Fatalf("unexpected request: %+v", req)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(c.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			c.check(t, cfg)
		})
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Window.Title != "VersusBank" {
		t.Fatalf("expected defaults, got %+v", cfg.Window)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
