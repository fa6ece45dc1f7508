package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

var keyMap = map[Key]ebiten.Key{
	KeyLeft:   ebiten.KeyLeft,
	KeyRight:  ebiten.KeyRight,
	KeyUp:     ebiten.KeyUp,
	KeyDown:   ebiten.KeyDown,
	KeyA:      ebiten.KeyA,
	KeyD:      ebiten.KeyD,
	KeyW:      ebiten.KeyW,
	KeyS:      ebiten.KeyS,
	KeyH:      ebiten.KeyH,
	KeyEnter:  ebiten.KeyEnter,
	KeyEscape: ebiten.KeyEscape,
	KeySpace:  ebiten.KeySpace,
	KeyP:      ebiten.KeyP,
}

var mouseMap = map[MouseButton]ebiten.MouseButton{
	MouseLeft:   ebiten.MouseButtonLeft,
	MouseRight:  ebiten.MouseButtonRight,
	MouseMiddle: ebiten.MouseButtonMiddle,
}

// EbitenSource polls ebiten's global input functions. Positions are
// scaled from window space into the game's logical resolution by the
// owning game via SetScale.
type EbitenSource struct {
	scale            float64
	offsetX, offsetY float64

	touchIDs []ebiten.TouchID
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{scale: 1}
}

// SetScale records the integer pixel scale and letterbox offset used to
// map window coordinates back into logical canvas coordinates.
func (s *EbitenSource) SetScale(scale, offsetX, offsetY float64) {
	if scale <= 0 {
		scale = 1
	}
	s.scale = scale
	s.offsetX = offsetX
	s.offsetY = offsetY
}

func (s *EbitenSource) toLogical(x, y int) (float64, float64) {
	return (float64(x) - s.offsetX) / s.scale, (float64(y) - s.offsetY) / s.scale
}

func (s *EbitenSource) PressedKeys() []Key {
	var keys []Key
	for k, ek := range keyMap {
		if ebiten.IsKeyPressed(ek) {
			keys = append(keys, k)
		}
	}
	return keys
}

func (s *EbitenSource) Cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return s.toLogical(x, y)
}

func (s *EbitenSource) MousePressed(b MouseButton) bool {
	eb, ok := mouseMap[b]
	if !ok {
		return false
	}
	return ebiten.IsMouseButtonPressed(eb)
}

func (s *EbitenSource) Touches() []Touch {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	touches := make([]Touch, 0, len(s.touchIDs))
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		lx, ly := s.toLogical(x, y)
		touches = append(touches, Touch{ID: int64(id), X: lx, Y: ly})
	}
	return touches
}
