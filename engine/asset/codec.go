package asset

import (
	"encoding/json"
	"fmt"
	"image"

	"golang.org/x/image/font/opentype"

	"versusbank/engine/render"
)

// Codec decodes raw bytes into a typed payload and disposes of it on
// unload.
type Codec interface {
	Decode(req Request, data []byte) (any, error)
	Dispose(payload any)
}

// Spritesheet is a shared source image cut into fixed-size tiles.
type Spritesheet struct {
	Image render.Sprite
	TileW int
	TileH int
}

// Frame returns the source rectangle of the i-th tile, row-major.
func (s *Spritesheet) Frame(i int) image.Rectangle {
	if s.TileW <= 0 || s.TileH <= 0 {
		return image.Rectangle{}
	}
	b := s.Image.Bounds()
	cols := b.Dx() / s.TileW
	if cols == 0 {
		return image.Rectangle{}
	}
	x := b.Min.X + (i%cols)*s.TileW
	y := b.Min.Y + (i/cols)*s.TileH
	return image.Rect(x, y, x+s.TileW, y+s.TileH)
}

// JSONCodec keeps the raw message; callers unmarshal into their own
// types.
type JSONCodec struct{}

func (JSONCodec) Decode(req Request, data []byte) (any, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("asset: %s: invalid JSON", req.Path)
	}
	return json.RawMessage(data), nil
}

func (JSONCodec) Dispose(any) {}

// FontCodec parses OpenType/TrueType font data.
type FontCodec struct{}

func (FontCodec) Decode(req Request, data []byte) (any, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("asset: parse font %s: %w", req.Path, err)
	}
	return f, nil
}

func (FontCodec) Dispose(any) {}
