package core

import (
	"fmt"
	"image"

	"github.com/1F47E/go-asciireel/internal/ascii"
	"github.com/1F47E/go-asciireel/internal/palette"
	"github.com/1F47E/go-asciireel/internal/render"
	"github.com/1F47E/go-asciireel/pkg/progress"
)

// Source yields luminance frames until it returns io.EOF
type Source interface {
	Read() (*image.Gray, error)
	Close() error
}

// Sink shows canvases and reports whether the user closed it
type Sink interface {
	Show(canvas *image.Gray) error
	IsOpen() bool
}

// Pipeline turns frames into rendered glyph canvases
type Pipeline struct {
	palette  palette.Palette
	width    int
	renderer *render.Renderer
	progress *progress.Counter
}

func New(p palette.Palette, width int, r *render.Renderer) (*Pipeline, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	if width < 1 {
		return nil, fmt.Errorf("output width must be positive, got %d", width)
	}
	if r == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	return &Pipeline{
		palette:  p,
		width:    width,
		renderer: r,
	}, nil
}

// WithProgress ticks c once per frame shown by stream drivers
func (p *Pipeline) WithProgress(c *progress.Counter) *Pipeline {
	p.progress = c
	return p
}

func (p *Pipeline) Palette() palette.Palette {
	return p.palette
}

func (p *Pipeline) Width() int {
	return p.width
}

// Grid resamples and quantizes one frame
func (p *Pipeline) Grid(frame *image.Gray) (ascii.Grid, error) {
	small, err := ascii.Resample(frame, p.width)
	if err != nil {
		return nil, err
	}
	return ascii.Quantize(small, p.palette), nil
}

// Convert runs the whole frame -> canvas chain
func (p *Pipeline) Convert(frame *image.Gray) (*image.Gray, error) {
	g, err := p.Grid(frame)
	if err != nil {
		return nil, err
	}
	return p.renderer.Render(g), nil
}
