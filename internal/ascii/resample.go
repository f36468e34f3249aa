package ascii

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/1F47E/go-asciireel/pkg/apperr"
	cfg "github.com/1F47E/go-asciireel/pkg/config"
)

// OutputHeight keeps the source aspect ratio, squashed by the glyph cell correction.
// Never returns less than one row.
func OutputHeight(h, w, outW int) int {
	aspect := float64(h) / float64(w)
	outH := int(float64(outW) * aspect * cfg.AspectCorrection)
	if outH < 1 {
		outH = 1
	}
	return outH
}

// Resample scales a luminance frame down to outW samples per row
func Resample(frame *image.Gray, outW int) (*image.Gray, error) {
	if outW < 1 {
		return nil, apperr.New(apperr.DecodeOrProcessingFailure, "resample",
			fmt.Errorf("output width must be positive, got %d", outW))
	}
	if frame == nil || frame.Bounds().Empty() {
		return nil, apperr.New(apperr.DecodeOrProcessingFailure, "resample",
			fmt.Errorf("empty frame"))
	}
	b := frame.Bounds()
	outH := OutputHeight(b.Dy(), b.Dx(), outW)

	dst := image.NewGray(image.Rect(0, 0, outW, outH))
	draw.BiLinear.Scale(dst, dst.Bounds(), frame, b, draw.Src, nil)
	return dst, nil
}
