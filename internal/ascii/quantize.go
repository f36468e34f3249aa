package ascii

import (
	"image"

	"github.com/1F47E/go-asciireel/internal/palette"
)

// Quantize picks one glyph per sample, same dimensions as the frame
func Quantize(frame *image.Gray, p palette.Palette) Grid {
	b := frame.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		off := frame.PixOffset(b.Min.X, b.Min.Y+y)
		row := frame.Pix[off : off+b.Dx()]
		for x, v := range row {
			g[y][x] = p.Glyph(v)
		}
	}
	return g
}
