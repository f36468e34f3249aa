package source

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/1F47E/go-asciireel/pkg/apperr"
	"github.com/1F47E/go-asciireel/pkg/logger"
)

// Image yields a single decoded file, then io.EOF
type Image struct {
	path string
	done bool
}

// OpenImage defers decoding to the first Read so decode errors surface as
// processing failures rather than an unavailable source
func OpenImage(path string) *Image {
	return &Image{path: path}
}

func (s *Image) Read() (*image.Gray, error) {
	if s.done {
		return nil, io.EOF
	}
	s.done = true

	log := logger.Scoped("source image")
	log.Debugf("Decoding %s", s.path)
	img, err := imaging.Open(s.path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, apperr.New(apperr.DecodeOrProcessingFailure, "decode "+s.path, err)
	}
	return Luminance(img), nil
}

func (s *Image) Close() error {
	return nil
}

// Luminance converts any image to 8-bit gray with the standard weights
func Luminance(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)
	return g
}
