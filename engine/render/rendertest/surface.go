// Package rendertest provides an in-memory Surface that records draw
// calls, so renderer-dependent code can be exercised without a window.
package rendertest

import (
	"image/color"

	"versusbank/engine/render"
)

// Call is one recorded surface operation.
type Call struct {
	Kind  string // "fill", "sprite", "rect", "text"
	X, Y  float64
	W, H  float64
	Text  string
	Alpha float64
	Op    render.Op
	Color color.Color
}

// Surface records every draw call made against it.
type Surface struct {
	W, H  int
	Calls []Call
}

func New(w, h int) *Surface {
	return &Surface{W: w, H: h}
}

func (s *Surface) Size() (int, int) { return s.W, s.H }

func (s *Surface) Fill(c color.Color) {
	s.Calls = append(s.Calls, Call{Kind: "fill", Color: c})
}

func (s *Surface) DrawSprite(sp render.Sprite, op render.Op) {
	s.Calls = append(s.Calls, Call{Kind: "sprite", X: op.TX, Y: op.TY, Alpha: op.Alpha, Op: op})
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color, alpha float64) {
	s.Calls = append(s.Calls, Call{Kind: "rect", X: x, Y: y, W: w, H: h, Color: c, Alpha: alpha})
}

func (s *Surface) DrawText(line string, x, y float64, c color.Color, alpha float64) {
	s.Calls = append(s.Calls, Call{Kind: "text", Text: line, X: x, Y: y, Color: c, Alpha: alpha})
}

// ByKind filters the recorded calls.
func (s *Surface) ByKind(kind string) []Call {
	var out []Call
	for _, c := range s.Calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
