package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// iconBase paints the 16x16 master icon: a vault door with a gold coin.
// The app has no bundled art, so the icon is generated the same way the
// game draws itself.
func iconBase() *image.NRGBA {
	bg := color.NRGBA{R: 0x16, G: 0x1a, B: 0x24, A: 0xff}
	wall := color.NRGBA{R: 0x2a, G: 0x31, B: 0x42, A: 0xff}
	gold := color.NRGBA{R: 0xe8, G: 0xc1, B: 0x4a, A: 0xff}

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	fill := func(x0, y0, x1, y1 int, c color.NRGBA) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}

	fill(0, 0, 16, 16, bg)
	fill(1, 1, 15, 15, wall)
	fill(2, 2, 14, 14, bg)
	// coin
	fill(6, 5, 10, 9, gold)
	fill(5, 6, 11, 8, gold)
	// cart
	fill(4, 11, 12, 13, gold)
	return img
}

// writeIcon scales the master icon to size with nearest neighbour so the
// pixel look survives, then encodes it as PNG.
func writeIcon(path string, size int) error {
	base := iconBase()
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
