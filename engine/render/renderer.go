package render

import (
	"image"
	"image/color"
	"strings"
)

// LineHeight is the vertical advance used by DrawText for multi-line
// strings, matching the 7x13 UI face.
const LineHeight = 14

type state struct {
	tx, ty float64
	alpha  float64
}

// Renderer draws through a Surface with a camera transform. Every draw
// call resolves the camera and the current transform stack entry, so no
// camera or alpha state ever leaks between calls.
type Renderer struct {
	surface Surface
	camera  *Camera
	stack   []state
}

func NewRenderer(surface Surface) *Renderer {
	return &Renderer{
		surface: surface,
		camera:  NewCamera(),
		stack:   []state{{alpha: 1}},
	}
}

func (r *Renderer) Surface() Surface { return r.surface }
func (r *Renderer) Camera() *Camera  { return r.camera }

func (r *Renderer) Size() (int, int) { return r.surface.Size() }

// Clear fills the whole surface, ignoring the camera.
func (r *Renderer) Clear(c color.Color) {
	r.surface.Fill(c)
}

// Push saves the current transform state. The scene transition renderer
// uses Push/Translate/SetAlpha/Pop to composite two scenes in one frame.
func (r *Renderer) Push() {
	r.stack = append(r.stack, r.top())
}

// Pop restores the most recently pushed transform state. Popping the
// root state is a programming error.
func (r *Renderer) Pop() {
	if len(r.stack) <= 1 {
		panic("render: transform stack underflow")
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// Translate offsets all subsequent draws in screen space.
func (r *Renderer) Translate(dx, dy float64) {
	s := &r.stack[len(r.stack)-1]
	s.tx += dx
	s.ty += dy
}

// SetAlpha multiplies the current state's alpha by a (clamped to [0, 1]).
func (r *Renderer) SetAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	s := &r.stack[len(r.stack)-1]
	s.alpha *= a
}

func (r *Renderer) top() state { return r.stack[len(r.stack)-1] }

func (r *Renderer) resolve(x, y float64) (float64, float64, float64) {
	sx, sy := r.camera.Apply(x, y)
	s := r.top()
	return sx + s.tx, sy + s.ty, s.alpha
}

// DrawText draws text at a world position, splitting on newlines.
func (r *Renderer) DrawText(text string, x, y float64, c color.Color) {
	sx, sy, alpha := r.resolve(x, y)
	for i, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		r.surface.DrawText(line, sx, sy+float64(i*LineHeight), c, alpha)
	}
}

// DrawSprite blits a whole sprite with its top-left at (x, y).
func (r *Renderer) DrawSprite(s Sprite, x, y float64) {
	r.drawSprite(s, x, y, image.Rectangle{})
}

// DrawSpriteTile blits the src sub-rectangle of a shared sheet.
func (r *Renderer) DrawSpriteTile(s Sprite, x, y float64, src image.Rectangle) {
	r.drawSprite(s, x, y, src)
}

func (r *Renderer) drawSprite(s Sprite, x, y float64, src image.Rectangle) {
	sx, sy, alpha := r.resolve(x, y)
	z := r.camera.scale()
	r.surface.DrawSprite(s, Op{
		TX:     sx,
		TY:     sy,
		ScaleX: z,
		ScaleY: z,
		Alpha:  alpha,
		Src:    src,
	})
}

// DrawRect fills an axis-aligned rectangle in world coordinates.
func (r *Renderer) DrawRect(x, y, w, h float64, c color.Color) {
	sx, sy, alpha := r.resolve(x, y)
	z := r.camera.scale()
	r.surface.FillRect(sx, sy, w*z, h*z, c, alpha)
}

// DrawPixel sets a single world-space pixel.
func (r *Renderer) DrawPixel(x, y float64, c color.Color) {
	r.DrawRect(x, y, 1, 1, c)
}
