// Package input normalizes keyboard, mouse, and multi-touch input into a
// simple per-frame state plus named gesture events. Polling goes through
// the Source interface so the handler can run headless in tests.
package input

// Key identifies a keyboard key independently of the backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyH
	KeyEnter
	KeyEscape
	KeySpace
	KeyP
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Touch is one active touch point as reported by the backend.
type Touch struct {
	ID   int64
	X, Y float64
}

// Source is the polling capability the handler reads once per frame.
type Source interface {
	PressedKeys() []Key
	Cursor() (x, y float64)
	MousePressed(b MouseButton) bool
	Touches() []Touch
}
