// Package render is a thin drawing facade over a 2D surface with a
// camera transform. The Surface interface keeps the renderer free of any
// window or GPU dependency so scenes can be rendered against an
// in-memory surface in tests.
package render

import (
	"image"
	"image/color"
)

// Sprite is any drawable image source. *ebiten.Image satisfies it.
type Sprite interface {
	Bounds() image.Rectangle
}

// Op carries the resolved screen-space transform for a single blit.
type Op struct {
	TX, TY         float64
	ScaleX, ScaleY float64
	Alpha          float64
	// Src selects a sub-rectangle of the sprite; the zero rect means the
	// whole sprite.
	Src image.Rectangle
}

// Surface is the minimal drawing capability the renderer needs.
type Surface interface {
	Size() (w, h int)
	Fill(c color.Color)
	DrawSprite(s Sprite, op Op)
	FillRect(x, y, w, h float64, c color.Color, alpha float64)
	DrawText(line string, x, y float64, c color.Color, alpha float64)
}
