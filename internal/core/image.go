package core

import (
	"fmt"

	"github.com/1F47E/go-asciireel/pkg/apperr"
	"github.com/1F47E/go-asciireel/pkg/logger"
)

// RunImage converts and shows a single frame.
// Waiting for the user to dismiss the window is left to the caller, which
// does it whether or not this fails.
func (p *Pipeline) RunImage(src Source, sink Sink) error {
	log := logger.Scoped("core image")

	frame, err := src.Read()
	if err != nil {
		return asProcessingFailure("read image", err)
	}
	b := frame.Bounds()
	log.Debugf("Decoded %dx%d image", b.Dx(), b.Dy())

	canvas, err := p.Convert(frame)
	if err != nil {
		return asProcessingFailure("convert image", err)
	}
	if err := sink.Show(canvas); err != nil {
		return asProcessingFailure("show image", err)
	}
	return nil
}

func asProcessingFailure(op string, err error) error {
	if apperr.KindOf(err) == apperr.DecodeOrProcessingFailure {
		return fmt.Errorf("%s: %w", op, err)
	}
	return apperr.New(apperr.DecodeOrProcessingFailure, op, err)
}
