// Package capture reads live frames from a camera through OpenCV.
package capture

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/1F47E/go-asciireel/internal/source"
	"github.com/1F47E/go-asciireel/pkg/apperr"
	"github.com/1F47E/go-asciireel/pkg/logger"
)

var ErrReadFailed = errors.New("capture read failed")

// Camera reads frames from an OpenCV capture device
type Camera struct {
	vc    *gocv.VideoCapture
	frame gocv.Mat
	gray  gocv.Mat
}

func OpenCamera(index int) (*Camera, error) {
	log := logger.Scoped("capture")
	vc, err := gocv.VideoCaptureDevice(index)
	if err != nil {
		return nil, apperr.New(apperr.SourceUnavailable, fmt.Sprintf("open camera %d", index), err)
	}
	if !vc.IsOpened() {
		_ = vc.Close()
		return nil, apperr.New(apperr.SourceUnavailable, fmt.Sprintf("open camera %d", index), nil)
	}
	log.Debugf("Camera %d opened", index)
	return &Camera{
		vc:    vc,
		frame: gocv.NewMat(),
		gray:  gocv.NewMat(),
	}, nil
}

func (c *Camera) Read() (*image.Gray, error) {
	if ok := c.vc.Read(&c.frame); !ok || c.frame.Empty() {
		return nil, ErrReadFailed
	}
	gocv.CvtColor(c.frame, &c.gray, gocv.ColorBGRToGray)
	img, err := c.gray.ToImage()
	if err != nil {
		return nil, fmt.Errorf("export frame: %w", err)
	}
	return source.Luminance(img), nil
}

func (c *Camera) Close() error {
	_ = c.frame.Close()
	_ = c.gray.Close()
	return c.vc.Close()
}
