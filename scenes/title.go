package scenes

import (
	"image/color"
	"log"

	"versusbank/engine/input"
	"versusbank/engine/render"
	"versusbank/engine/scene"
)

var (
	vaultBg   = color.NRGBA{R: 0x16, G: 0x1a, B: 0x24, A: 0xff}
	vaultWall = color.NRGBA{R: 0x2a, G: 0x31, B: 0x42, A: 0xff}
	goldInk   = color.NRGBA{R: 0xe8, G: 0xc1, B: 0x4a, A: 0xff}
	paleInk   = color.NRGBA{R: 0xc9, G: 0xd1, B: 0xdb, A: 0xff}
	dimInk    = color.NRGBA{R: 0x6b, G: 0x75, B: 0x85, A: 0xff}
)

// TitleScene shows the banner and routes the player to the vault floor
// or the help page.
type TitleScene struct {
	ctx     *scene.Context
	blinkMs float64
	prev    map[input.Key]bool
}

func NewTitleScene() *TitleScene {
	return &TitleScene{prev: map[input.Key]bool{}}
}

func (s *TitleScene) Init(ctx *scene.Context) error {
	s.ctx = ctx
	ctx.Input.On(input.GestureTap, func(ev input.GestureEvent) {
		if ctx.Scenes.Current() != Title {
			return
		}
		s.startGame()
	})
	ctx.Input.On(input.GestureSwipe, func(ev input.GestureEvent) {
		if ctx.Scenes.Current() != Title || ev.Direction != input.DirLeft {
			return
		}
		s.openHelp()
	})
	return nil
}

func (s *TitleScene) justPressed(k input.Key) bool {
	down := s.ctx.Input.KeyPressed(k)
	was := s.prev[k]
	s.prev[k] = down
	return down && !was
}

func (s *TitleScene) Update(dt float64) {
	s.blinkMs += dt
	if s.justPressed(input.KeyEnter) || s.justPressed(input.KeySpace) {
		s.startGame()
		return
	}
	if s.justPressed(input.KeyH) {
		s.openHelp()
	}
}

func (s *TitleScene) startGame() {
	if err := s.ctx.Scenes.SwitchTo(Play, scene.TransitionFade); err != nil {
		log.Printf("title: switch to play: %v", err)
	}
}

func (s *TitleScene) openHelp() {
	if err := s.ctx.Scenes.SwitchTo(Help, scene.TransitionSlideLeft); err != nil {
		log.Printf("title: switch to help: %v", err)
	}
}

func (s *TitleScene) Render(r *render.Renderer) {
	w, h := float64(s.ctx.Width), float64(s.ctx.Height)
	r.DrawRect(0, 0, w, h, vaultBg)
	r.DrawRect(0, h-20, w, 20, vaultWall)

	// stacked coin columns flanking the banner
	for i := 0; i < 4; i++ {
		y := h - 26 - float64(i)*7
		r.DrawRect(24, y, 18, 5, goldInk)
		r.DrawRect(w-42, y, 18, 5, goldInk)
	}

	r.DrawText("VERSUSBANK", w/2-40, 60, goldInk)
	r.DrawText("the counting house is open", w/2-80, 84, paleInk)

	if int(s.blinkMs/600)%2 == 0 {
		r.DrawText("tap or press Enter to clock in", w/2-90, h-70, paleInk)
	}
	r.DrawText("swipe left or H for help", w/2-72, h-50, dimInk)
}

func (s *TitleScene) Destroy() {
	s.blinkMs = 0
	clear(s.prev)
}
