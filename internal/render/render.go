package render

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"

	"github.com/1F47E/go-asciireel/internal/ascii"
	cfg "github.com/1F47E/go-asciireel/pkg/config"
	"github.com/1F47E/go-asciireel/pkg/logger"
)

// Renderer rasterizes glyph grids, one cellSize x cellSize cell per glyph.
// The face is not safe for concurrent use.
type Renderer struct {
	cellSize int
	face     font.Face
}

func New(cellSize int) (*Renderer, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("cannot parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    cfg.FontScale * cfg.FontUnit,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &Renderer{cellSize: cellSize, face: face}, nil
}

func (r *Renderer) CellSize() int {
	return r.cellSize
}

// Render draws white glyphs on black.
// Baselines sit on the top edge of each cell, so the first row mostly falls
// above the canvas and the last cell row stays empty.
func (r *Renderer) Render(g ascii.Grid) *image.Gray {
	log := logger.Scoped("renderer")
	s := r.cellSize
	canvas := image.NewGray(image.Rect(0, 0, g.Width()*s, g.Height()*s))
	log.Debugf("Rendering %dx%d grid to %v", g.Width(), g.Height(), canvas.Bounds().Size())

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: r.face,
	}
	for i, row := range g {
		for j, ch := range row {
			if ch == ' ' {
				continue
			}
			d.Dot = fixed.P(j*s, i*s)
			d.DrawString(string(ch))
		}
	}
	return canvas
}

func (r *Renderer) Close() error {
	return r.face.Close()
}
