package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"

	"versusbank/assets"
	"versusbank/common"
	"versusbank/engine/input"
	"versusbank/engine/render"
	"versusbank/engine/scene"
)

const (
	cartWidth  = 40.0
	cartHeight = 8.0
	cartSpeed  = 150.0 // px per second
	coinRadius = 3.0
	floorInset = 20.0
	missLimit  = 3

	slowmoWindowMs = 1500.0
	slowmoScale    = 0.35
	gameOverHoldMs = 2600.0
)

var (
	silverCoin = color.NRGBA{R: 0xb8, G: 0xc2, B: 0xcf, A: 0xff}
	goldCoin   = goldInk
	cartColor  = color.NRGBA{R: 0x4a, G: 0x8f, B: 0xd4, A: 0xff}
	missColor  = color.NRGBA{R: 0xd4, G: 0x4a, B: 0x4a, A: 0xff}
)

type coin struct {
	body  *cp.Body
	shape *cp.Shape
	value int
	gold  bool
}

// PlayScene is the vault floor: coins drop from the ceiling on the
// script's schedule and the player catches them in a cart.
type PlayScene struct {
	ctx    *scene.Context
	space  *cp.Space
	script *WaveScript
	rng    *rand.Rand
	prev   map[input.Key]bool

	coins []*coin
	cartX float64

	wave      int
	current   Wave
	dropTimer float64
	dropsLeft int

	score  int
	caught int
	missed int

	slowmoMs float64
	over     bool
	overMs   float64
	newBest  bool

	stats     Stats
	statsPath string
}

func NewPlayScene() *PlayScene {
	return &PlayScene{
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		prev:      map[input.Key]bool{},
		statsPath: statsFileName,
	}
}

func (s *PlayScene) Init(ctx *scene.Context) error {
	s.ctx = ctx
	s.stats = loadStats(s.statsPath)

	src, err := assets.Load("waves.tengo")
	if err != nil {
		return fmt.Errorf("play: load wave script: %w", err)
	}
	s.script, err = CompileWaveScript(src)
	if err != nil {
		return err
	}

	s.space = cp.NewSpace()
	s.space.SetGravity(cp.Vector{X: 0, Y: 60})

	ctx.Input.On(input.GestureLongPress, func(ev input.GestureEvent) {
		if ctx.Scenes.Current() != Play || s.over {
			return
		}
		s.slowmoMs = slowmoWindowMs
	})
	ctx.Input.On(input.GestureTap, func(ev input.GestureEvent) {
		if ctx.Scenes.Current() != Play || !s.over {
			return
		}
		s.toTitle()
	})

	s.startRun()
	return nil
}

// startRun resets everything a fresh shift needs. Init runs once per
// registration, so re-activation after a game over comes through here.
func (s *PlayScene) startRun() {
	for _, c := range s.coins {
		s.space.RemoveShape(c.shape)
		s.space.RemoveBody(c.body)
	}
	s.coins = s.coins[:0]
	s.cartX = float64(s.ctx.Width) / 2
	s.score = 0
	s.caught = 0
	s.missed = 0
	s.slowmoMs = 0
	s.over = false
	s.overMs = 0
	s.newBest = false
	s.loadWave(0)
}

func (s *PlayScene) loadWave(n int) {
	w, err := s.script.Wave(n)
	if err != nil {
		log.Printf("play: wave %d: %v", n, err)
		w = Wave{IntervalMs: 700, Speed: 60, Value: 1, Coins: 8}
	}
	s.wave = n
	s.current = w
	s.dropTimer = w.IntervalMs
	s.dropsLeft = w.Coins
}

func (s *PlayScene) justPressed(k input.Key) bool {
	down := s.ctx.Input.KeyPressed(k)
	was := s.prev[k]
	s.prev[k] = down
	return down && !was
}

func (s *PlayScene) Update(dt float64) {
	if s.over {
		s.overMs += dt
		if s.overMs >= gameOverHoldMs || s.justPressed(input.KeyEnter) {
			s.toTitle()
		}
		return
	}

	simDt := dt
	if s.slowmoMs > 0 {
		simDt *= slowmoScale
		s.slowmoMs -= dt
	}

	s.moveCart(simDt)

	s.dropTimer -= simDt
	for s.dropTimer <= 0 && s.dropsLeft > 0 {
		s.spawnCoin()
		s.dropsLeft--
		s.dropTimer += s.current.IntervalMs
	}
	if s.dropsLeft == 0 && len(s.coins) == 0 {
		s.loadWave(s.wave + 1)
	}

	s.space.Step(simDt / 1000)
	s.resolveCoins()
}

func (s *PlayScene) moveCart(dt float64) {
	axis := 0.0
	if s.ctx.Input.KeyPressed(input.KeyLeft) || s.ctx.Input.KeyPressed(input.KeyA) {
		axis -= 1
	}
	if s.ctx.Input.KeyPressed(input.KeyRight) || s.ctx.Input.KeyPressed(input.KeyD) {
		axis += 1
	}
	if jx, _, active := s.ctx.Input.VirtualJoystick(); active {
		axis = jx
	}
	s.cartX += axis * cartSpeed * dt / 1000
	s.cartX = common.Clamp(s.cartX, cartWidth/2, float64(s.ctx.Width)-cartWidth/2)
}

func (s *PlayScene) spawnCoin() {
	x := coinRadius + s.rng.Float64()*(float64(s.ctx.Width)-2*coinRadius)
	moment := cp.MomentForCircle(1, 0, coinRadius, cp.Vector{})
	body := cp.NewBody(1, moment)
	body.SetPosition(cp.Vector{X: x, Y: -coinRadius})
	body.SetVelocityVector(cp.Vector{X: 0, Y: s.current.Speed})
	shape := cp.NewCircle(body, coinRadius, cp.Vector{})
	shape.SetFriction(0.4)
	s.space.AddBody(body)
	s.space.AddShape(shape)
	s.coins = append(s.coins, &coin{
		body:  body,
		shape: shape,
		value: s.current.Value,
		gold:  s.wave%5 == 4,
	})
}

func (s *PlayScene) resolveCoins() {
	cartY := float64(s.ctx.Height) - floorInset
	kept := s.coins[:0]
	for _, c := range s.coins {
		p := c.body.Position()
		switch {
		case p.Y >= cartY-coinRadius && p.Y <= cartY+cartHeight &&
			p.X >= s.cartX-cartWidth/2-coinRadius && p.X <= s.cartX+cartWidth/2+coinRadius:
			s.score += c.value
			s.caught++
			s.removeCoin(c)
		case p.Y > float64(s.ctx.Height)+coinRadius:
			s.missed++
			s.removeCoin(c)
			if s.missed >= missLimit {
				s.gameOver()
			}
		default:
			kept = append(kept, c)
		}
	}
	s.coins = kept
}

func (s *PlayScene) removeCoin(c *coin) {
	s.space.RemoveShape(c.shape)
	s.space.RemoveBody(c.body)
}

// gameOver is idempotent: several coins can cross the floor in one
// resolve pass once the miss limit is reached.
func (s *PlayScene) gameOver() {
	if s.over {
		return
	}
	s.over = true
	s.newBest = s.stats.record(s.score, s.wave+1, s.caught)
	s.stats.save(s.statsPath)
}

func (s *PlayScene) toTitle() {
	if err := s.ctx.Scenes.SwitchTo(Title, scene.TransitionSlideDown); err != nil {
		log.Printf("play: switch to title: %v", err)
	}
}

func (s *PlayScene) Render(r *render.Renderer) {
	w, h := float64(s.ctx.Width), float64(s.ctx.Height)
	r.DrawRect(0, 0, w, h, vaultBg)
	r.DrawRect(0, h-floorInset+cartHeight, w, floorInset-cartHeight, vaultWall)
	r.DrawRect(0, 0, w, 4, vaultWall)

	cartY := h - floorInset
	r.DrawRect(s.cartX-cartWidth/2, cartY, cartWidth, cartHeight, cartColor)
	r.DrawRect(s.cartX-cartWidth/2+3, cartY-2, cartWidth-6, 2, cartColor)

	for _, c := range s.coins {
		p := c.body.Position()
		ink := color.Color(silverCoin)
		if c.gold {
			ink = goldCoin
		}
		r.DrawRect(p.X-coinRadius, p.Y-coinRadius, coinRadius*2, coinRadius*2, ink)
	}

	r.DrawText(fmt.Sprintf("SCORE %d", s.score), 8, 14, paleInk)
	r.DrawText(fmt.Sprintf("WAVE %d", s.wave+1), w/2-20, 14, dimInk)
	for i := 0; i < s.missed; i++ {
		r.DrawRect(w-14-float64(i)*10, 8, 6, 6, missColor)
	}
	if s.slowmoMs > 0 {
		r.DrawText("SLOW", 8, h-4, goldInk)
	}

	if jx, jy, active := s.ctx.Input.VirtualJoystick(); active {
		cx, cy := 50.0, h-50.0
		r.DrawRect(cx-16, cy-1, 32, 2, dimInk)
		r.DrawRect(cx-1, cy-16, 2, 32, dimInk)
		r.DrawRect(cx+jx*14-2, cy+jy*14-2, 4, 4, paleInk)
	}

	if s.over {
		r.DrawRect(0, h/2-36, w, 72, vaultWall)
		r.DrawText("SHIFT OVER", w/2-38, h/2-16, missColor)
		r.DrawText(fmt.Sprintf("banked %d on wave %d", s.score, s.wave+1), w/2-70, h/2+2, paleInk)
		if s.newBest {
			r.DrawText("new best!", w/2-32, h/2+20, goldInk)
		} else {
			r.DrawText(fmt.Sprintf("best %d", s.stats.BestScore), w/2-24, h/2+20, dimInk)
		}
	}
}

func (s *PlayScene) Resize(w, h int) {
	s.cartX = common.Clamp(s.cartX, cartWidth/2, float64(w)-cartWidth/2)
}

// Score reports the run's current haul. The pause menu's share button
// reads it through this method.
func (s *PlayScene) Score() int { return s.score }

func (s *PlayScene) HasUnsavedProgress() bool {
	return !s.over && s.score > 0
}

// Destroy banks a quit mid-run into the stats file and resets state so
// the next activation starts a fresh shift.
func (s *PlayScene) Destroy() {
	if !s.over && s.score > 0 {
		s.stats.record(s.score, s.wave+1, s.caught)
		s.stats.save(s.statsPath)
	}
	clear(s.prev)
	s.startRun()
}
