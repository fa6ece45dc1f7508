package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"versusbank/config"
	"versusbank/engine/asset"
	"versusbank/engine/input"
	"versusbank/engine/loop"
	"versusbank/engine/render"
	"versusbank/engine/scene"
)

// Game owns the fixed-timestep loop and wires the scene manager, input
// handler, renderer, and asset manager together.
type Game struct {
	cfg config.Config

	loop    *loop.Loop
	scenes  *scene.Manager
	inputs  *input.Handler
	source  *input.EbitenSource
	assets  *asset.Manager
	watcher *asset.Watcher

	offscreen *ebiten.Image
	surface   *render.EbitenSurface
	renderer  *render.Renderer

	now      func() time.Time
	lastTick time.Time

	paused  bool
	pauseUI *pauseUI

	// integer pixel scale and letterbox offsets, recomputed on resize
	scale      float64
	offX, offY float64
	outW, outH int

	closing bool
	quit    bool
	fatal   error
	frames  int
	debug   bool
}

func NewGame(cfg config.Config, assets *asset.Manager, watcher *asset.Watcher) *Game {
	source := input.NewEbitenSource()
	inputs := input.NewHandler(source, cfg.Input.Options())
	inputs.SetCanvasSize(float64(cfg.Game.BaseWidth), float64(cfg.Game.BaseHeight))

	scenes := scene.NewManager()
	scenes.Duration = cfg.Scene.TransitionMs

	offscreen := ebiten.NewImage(cfg.Game.BaseWidth, cfg.Game.BaseHeight)
	surface := render.NewEbitenSurface(offscreen)

	g := &Game{
		cfg:       cfg,
		loop:      &loop.Loop{Step: cfg.Game.StepMs, MaxDelta: cfg.Game.MaxDeltaMs},
		scenes:    scenes,
		inputs:    inputs,
		source:    source,
		assets:    assets,
		watcher:   watcher,
		offscreen: offscreen,
		surface:   surface,
		renderer:  render.NewRenderer(surface),
		now:       time.Now,
		scale:     1,
		debug:     cfg.Debug,
	}
	g.pauseUI = newPauseUI(g)

	scenes.SetContext(&scene.Context{
		Assets: assets,
		Input:  inputs,
		Scenes: scenes,
		Width:  cfg.Game.BaseWidth,
		Height: cfg.Game.BaseHeight,
	})
	return g
}

// Scenes exposes the scene manager for registration at startup.
func (g *Game) Scenes() *scene.Manager { return g.scenes }

// Pause suspends fixed-step updates; rendering continues so the paused
// frame stays on screen.
func (g *Game) Pause() {
	g.paused = true
}

// Resume restores updates. Accumulated pause time is dropped so the
// simulation doesn't fast-forward.
func (g *Game) Resume() {
	g.paused = false
	g.loop.Reset()
	g.lastTick = time.Time{}
}

func (g *Game) Paused() bool { return g.paused }

func (g *Game) Update() error {
	defer g.recoverFatal("update")

	if g.quit {
		return ebiten.Termination
	}
	if g.fatal != nil {
		return nil
	}

	g.drainWatcher()
	g.inputs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.paused {
			g.Resume()
		} else {
			g.Pause()
		}
	}

	if ebiten.IsWindowBeingClosed() {
		if g.scenes.HasUnsavedProgress() && !g.closing {
			g.closing = true
			g.Pause()
		} else {
			return ebiten.Termination
		}
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	now := g.now()
	var delta float64
	if !g.lastTick.IsZero() {
		delta = float64(now.Sub(g.lastTick)) / float64(time.Millisecond)
	}
	g.lastTick = now

	g.loop.Advance(delta, func(step float64) {
		g.scenes.Update(step)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	defer g.recoverFatal("draw")
	g.frames++

	g.renderer.Clear(color.Black)
	if g.fatal != nil {
		g.renderer.DrawText("something went wrong:\n"+g.fatal.Error(), 8, 24, color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff})
	} else {
		g.scenes.Render(g.renderer)
	}
	if g.debug {
		g.renderer.DrawText(fmt.Sprintf("FPS %.1f  acc %.1fms", ebiten.ActualFPS(), g.loop.Accumulated()), 2, 10, color.White)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate(g.offX, g.offY)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.offscreen, op)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// Layout keeps the fixed internal resolution and recomputes the largest
// integer scale that fits the window, letterboxed. Never fractional, so
// sampling stays pixel-perfect.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight

		sx := outsideWidth / g.cfg.Game.BaseWidth
		sy := outsideHeight / g.cfg.Game.BaseHeight
		s := int(math.Min(float64(sx), float64(sy)))
		if s < 1 {
			s = 1
		}
		g.scale = float64(s)
		g.offX = (float64(outsideWidth) - g.scale*float64(g.cfg.Game.BaseWidth)) / 2
		g.offY = (float64(outsideHeight) - g.scale*float64(g.cfg.Game.BaseHeight)) / 2
		g.source.SetScale(g.scale, g.offX, g.offY)

		g.scenes.Resize(g.cfg.Game.BaseWidth, g.cfg.Game.BaseHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("asset: reloading %s", path)
			g.assets.Invalidate(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("asset: watcher: %v", err)
		default:
			return
		}
	}
}

// recoverFatal is the application error boundary: a panic in update or
// draw is captured once and rendered as an error screen instead of
// crashing the process.
func (g *Game) recoverFatal(phase string) {
	if r := recover(); r != nil {
		if g.fatal == nil {
			g.fatal = fmt.Errorf("%s: %v", phase, r)
		}
		log.Printf("game: recovered panic in %s: %v", phase, r)
	}
}
