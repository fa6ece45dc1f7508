package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var uiFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// EbitenSurface adapts an *ebiten.Image to the Surface interface.
type EbitenSurface struct {
	img *ebiten.Image
}

func NewEbitenSurface(img *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{img: img}
}

// SetTarget swaps the underlying image, so one surface can be retargeted
// at a resized offscreen without rebuilding the renderer.
func (s *EbitenSurface) SetTarget(img *ebiten.Image) { s.img = img }

func (s *EbitenSurface) Image() *ebiten.Image { return s.img }

func (s *EbitenSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Fill(c color.Color) {
	s.img.Fill(c)
}

func (s *EbitenSurface) DrawSprite(sp Sprite, op Op) {
	img, ok := sp.(*ebiten.Image)
	if !ok {
		return
	}
	if !op.Src.Empty() {
		img = img.SubImage(op.Src).(*ebiten.Image)
	}
	dio := &ebiten.DrawImageOptions{}
	dio.GeoM.Scale(op.ScaleX, op.ScaleY)
	dio.GeoM.Translate(op.TX, op.TY)
	dio.ColorScale.ScaleAlpha(float32(op.Alpha))
	s.img.DrawImage(img, dio)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color, alpha float64) {
	r, g, b, a := c.RGBA()
	scaled := color.NRGBA64{
		R: uint16(r),
		G: uint16(g),
		B: uint16(b),
		A: uint16(float64(a) * alpha),
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), scaled, false)
}

func (s *EbitenSurface) DrawText(line string, x, y float64, c color.Color, alpha float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	ebtext.Draw(s.img, line, uiFace, op)
}
