package scenes

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"

	"versusbank/engine/input"
	"versusbank/engine/scene"
)

type stubSource struct {
	keys    []input.Key
	cx, cy  float64
	pressed bool
	touches []input.Touch
}

func (s *stubSource) PressedKeys() []input.Key   { return s.keys }
func (s *stubSource) Cursor() (float64, float64) { return s.cx, s.cy }
func (s *stubSource) MousePressed(b input.MouseButton) bool {
	return s.pressed && b == input.MouseLeft
}
func (s *stubSource) Touches() []input.Touch { return s.touches }

func newPlayHarness(t *testing.T) (*PlayScene, *stubSource, *scene.Manager) {
	t.Helper()
	src := &stubSource{}
	handler := input.NewHandler(src, input.DefaultOptions())
	handler.SetCanvasSize(320, 240)
	m := scene.NewManager()
	ctx := &scene.Context{Input: handler, Scenes: m, Width: 320, Height: 240}
	m.SetContext(ctx)

	p := NewPlayScene()
	p.statsPath = filepath.Join(t.TempDir(), "stats.json")
	p.rng = rand.New(rand.NewSource(1))

	m.Register(Title, NewTitleScene())
	m.Register(Play, p)
	if err := m.SwitchTo(Play, scene.TransitionNone); err != nil {
		t.Fatalf("switch to play: %v", err)
	}
	return p, src, m
}

func (s *PlayScene) placeCoin(t *testing.T, x, y float64) *coin {
	t.Helper()
	s.spawnCoin()
	c := s.coins[len(s.coins)-1]
	c.body.SetPosition(cp.Vector{X: x, Y: y})
	return c
}

func TestPlayCatchScoresCoin(t *testing.T) {
	p, _, _ := newPlayHarness(t)

	cartY := float64(p.ctx.Height) - floorInset
	p.placeCoin(t, p.cartX, cartY)
	p.resolveCoins()

	if p.score != p.current.Value {
		t.Errorf("score = %d, want %d", p.score, p.current.Value)
	}
	if p.caught != 1 {
		t.Errorf("caught = %d, want 1", p.caught)
	}
	if len(p.coins) != 0 {
		t.Errorf("caught coin not removed, %d left", len(p.coins))
	}
}

func TestPlayCoinOutsideCartFallsThrough(t *testing.T) {
	p, _, _ := newPlayHarness(t)

	cartY := float64(p.ctx.Height) - floorInset
	p.placeCoin(t, p.cartX+cartWidth, cartY)
	p.resolveCoins()

	if p.score != 0 {
		t.Errorf("score = %d, want 0", p.score)
	}
	if len(p.coins) != 1 {
		t.Fatalf("coin beside the cart should stay in flight, %d left", len(p.coins))
	}
}

func TestPlayThreeMissesEndRun(t *testing.T) {
	p, _, _ := newPlayHarness(t)

	for i := 0; i < missLimit; i++ {
		p.placeCoin(t, 10, float64(p.ctx.Height)+coinRadius+1)
		p.resolveCoins()
	}

	if p.missed != missLimit {
		t.Errorf("missed = %d, want %d", p.missed, missLimit)
	}
	if !p.over {
		t.Error("run should be over after three misses")
	}
	if p.HasUnsavedProgress() {
		t.Error("finished run should not report unsaved progress")
	}

	got := loadStats(p.statsPath)
	if got.BestWave != 1 {
		t.Errorf("BestWave = %d, want 1", got.BestWave)
	}
}

func TestPlaySimultaneousMissesBankRunOnce(t *testing.T) {
	p, _, _ := newPlayHarness(t)
	p.score = 5
	p.caught = 3
	p.missed = missLimit - 1

	// two coins cross the floor in the same resolve pass
	below := float64(p.ctx.Height) + coinRadius + 1
	p.placeCoin(t, 10, below)
	p.placeCoin(t, 30, below)
	p.resolveCoins()

	if !p.over {
		t.Fatal("run should be over")
	}
	got := loadStats(p.statsPath)
	if got.TotalCoins != 3 {
		t.Errorf("TotalCoins = %d, want 3 (run banked once)", got.TotalCoins)
	}
	if got.BestScore != 5 {
		t.Errorf("BestScore = %d, want 5", got.BestScore)
	}
}

func TestPlayGameOverReturnsToTitle(t *testing.T) {
	p, _, m := newPlayHarness(t)

	p.over = true
	p.Update(gameOverHoldMs + 1)

	if !m.Transitioning() {
		t.Fatal("expected slide transition back to the title scene")
	}
	m.Update(m.Duration)
	if m.Current() != Title {
		t.Errorf("current scene = %q, want %q", m.Current(), Title)
	}
}

func TestPlaySpawnCadenceFollowsWaveScript(t *testing.T) {
	p, _, _ := newPlayHarness(t)

	if p.dropsLeft != p.current.Coins {
		t.Fatalf("dropsLeft = %d, want %d", p.dropsLeft, p.current.Coins)
	}

	p.Update(p.current.IntervalMs)
	if len(p.coins) != 1 {
		t.Errorf("coins after one interval = %d, want 1", len(p.coins))
	}
	if p.dropsLeft != p.current.Coins-1 {
		t.Errorf("dropsLeft = %d, want %d", p.dropsLeft, p.current.Coins-1)
	}
}

func TestPlayKeyboardMovesCart(t *testing.T) {
	p, src, _ := newPlayHarness(t)

	start := p.cartX
	src.keys = []input.Key{input.KeyRight}
	p.ctx.Input.Update()
	p.Update(100)

	want := start + cartSpeed*0.1
	if p.cartX <= start || p.cartX > want+1e-9 {
		t.Errorf("cartX = %v, want %v", p.cartX, want)
	}

	src.keys = nil
	p.ctx.Input.Update()
	moved := p.cartX
	p.Update(100)
	if p.cartX != moved {
		t.Errorf("cart moved with no input: %v -> %v", moved, p.cartX)
	}
}

func TestPlayJoystickOverridesKeys(t *testing.T) {
	p, src, _ := newPlayHarness(t)
	p.cartX = 160

	// joystick anchored on the left half, dragged left
	src.touches = []input.Touch{{ID: 1, X: 80, Y: 120}}
	p.ctx.Input.Update()
	src.touches = []input.Touch{{ID: 1, X: 20, Y: 120}}
	src.keys = []input.Key{input.KeyRight}
	p.ctx.Input.Update()

	start := p.cartX
	p.Update(100)
	if p.cartX >= start {
		t.Errorf("joystick pull left should beat held right key, cartX %v -> %v", start, p.cartX)
	}
}

func TestPlayHasUnsavedProgressMidRun(t *testing.T) {
	p, _, _ := newPlayHarness(t)

	if p.HasUnsavedProgress() {
		t.Error("fresh run with no score should have nothing to lose")
	}
	p.score = 5
	if !p.HasUnsavedProgress() {
		t.Error("mid-run score should count as unsaved progress")
	}
}

func TestPlayDestroyBanksRunAndResets(t *testing.T) {
	p, _, _ := newPlayHarness(t)

	p.score = 9
	p.caught = 9
	p.Destroy()

	got := loadStats(p.statsPath)
	if got.BestScore != 9 || got.TotalCoins != 9 {
		t.Errorf("quit run not banked: %+v", got)
	}
	if p.score != 0 || p.over || len(p.coins) != 0 {
		t.Errorf("scene not reset after destroy: score=%d over=%v coins=%d", p.score, p.over, len(p.coins))
	}
}
