package core

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/1F47E/go-asciireel/pkg/apperr"
	"github.com/1F47E/go-asciireel/pkg/logger"
)

type State int

const (
	Running State = iota
	// source exhausted or failed to read
	Stopped
	// user closed the display
	Closed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// RunStream shows every frame of src until the source ends or the sink is closed.
// There is no pacing, playback runs as fast as frames are converted.
// Read failures after the first frame just stop the loop. A source that fails
// before producing anything comes back as an error with the Stopped state.
// Conversion and display errors abort the loop with the Running state.
func (p *Pipeline) RunStream(ctx context.Context, src Source, sink Sink) (State, error) {
	log := logger.Scoped("core stream")
	defer p.progress.Finish()

	frames := 0
	for {
		select {
		case <-ctx.Done():
			log.Debugf("Cancelled after %d frames", frames)
			return Stopped, ctx.Err()
		default:
		}

		frame, err := src.Read()
		if err != nil {
			if frames == 0 && !errors.Is(err, io.EOF) {
				if apperr.KindOf(err) == apperr.Unknown {
					err = apperr.New(apperr.SourceUnavailable, "read first frame", err)
				}
				return Stopped, err
			}
			if !errors.Is(err, io.EOF) {
				log.Warnf("Frame read failed after %d frames: %v", frames, err)
			}
			log.Debugf("Source done after %d frames", frames)
			return Stopped, nil
		}

		canvas, err := p.Convert(frame)
		if err != nil {
			return Running, fmt.Errorf("frame %d: %w", frames+1, err)
		}
		if err := sink.Show(canvas); err != nil {
			return Running, fmt.Errorf("show frame %d: %w", frames+1, err)
		}
		frames++
		p.progress.Add(1)

		if !sink.IsOpen() {
			log.Debugf("Display closed after %d frames", frames)
			return Closed, nil
		}
	}
}
