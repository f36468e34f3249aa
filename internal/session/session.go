package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/1F47E/go-asciireel/internal/core"
	"github.com/1F47E/go-asciireel/internal/palette"
	"github.com/1F47E/go-asciireel/internal/prompt"
	"github.com/1F47E/go-asciireel/internal/render"
	"github.com/1F47E/go-asciireel/internal/source"
	"github.com/1F47E/go-asciireel/pkg/apperr"
	cfg "github.com/1F47E/go-asciireel/pkg/config"
	"github.com/1F47E/go-asciireel/pkg/logger"
	"github.com/1F47E/go-asciireel/pkg/progress"
)

// Window is the display the drivers draw into
type Window interface {
	core.Sink
	Wait()
	Close() error
}

// Session runs one conversion session. Sources, window and picker are injected
// so the session logic does not depend on OpenCV or a desktop.
type Session struct {
	In       io.Reader
	Out      io.Writer
	Palettes *palette.Table
	Width    int
	CellSize int

	Pick       func(f source.Filter) (string, error)
	OpenImage  func(path string) (core.Source, error)
	OpenVideo  func(ctx context.Context, path string) (core.Source, error)
	OpenCamera func(index int) (core.Source, error)
	OpenWindow func() (Window, error)

	// frame counter output for streams, nil disables it
	Progress io.Writer
}

// Interactive asks for the source and palette, then runs the matching driver
func (s *Session) Interactive(ctx context.Context) error {
	p := prompt.New(s.In, s.Out)

	kind, err := p.ChooseSource()
	if err != nil {
		return s.report(err)
	}
	pal, err := p.ChoosePalette(s.Palettes)
	if err != nil {
		return s.report(err)
	}

	switch kind {
	case prompt.Image:
		path, err := s.Pick(source.ImageFiles)
		if err != nil {
			return s.report(err)
		}
		return s.Image(ctx, path, pal)
	case prompt.Video:
		path, err := s.Pick(source.VideoFiles)
		if err != nil {
			return s.report(err)
		}
		return s.Video(ctx, path, pal)
	default:
		return s.Webcam(ctx, pal)
	}
}

// Image shows one picture and waits for the user to dismiss it, even when
// the conversion failed
func (s *Session) Image(ctx context.Context, path string, pal palette.Palette) error {
	log := logger.Scoped("session image")
	if !source.ImageFiles.Match(path) {
		log.Warnf("%s does not look like an image", path)
	}

	pipe, done, err := s.pipeline(pal, false)
	if err != nil {
		return s.report(err)
	}
	defer done()

	src, err := s.OpenImage(path)
	if err != nil {
		return s.report(err)
	}
	defer src.Close()

	win, err := s.OpenWindow()
	if err != nil {
		return s.report(err)
	}
	defer win.Close()

	runErr := pipe.RunImage(src, win)
	if runErr != nil {
		s.report(runErr)
	}
	win.Wait()
	return runErr
}

// Video plays every decoded frame until the file ends or the window is closed
func (s *Session) Video(ctx context.Context, path string, pal palette.Palette) error {
	log := logger.Scoped("session video")
	if !source.VideoFiles.Match(path) {
		log.Warnf("%s does not look like a video", path)
	}

	src, err := s.OpenVideo(ctx, path)
	if err != nil {
		log.Debug(err)
		fmt.Fprintln(s.Out, "Error: Could not open video.")
		return err
	}
	defer src.Close()
	return s.stream(ctx, src, pal)
}

// Webcam streams the default capture device until it fails or the window is closed
func (s *Session) Webcam(ctx context.Context, pal palette.Palette) error {
	log := logger.Scoped("session webcam")
	fmt.Fprintln(s.Out, "Starting webcam ASCII... ")

	src, err := s.OpenCamera(cfg.CameraIndex)
	if err != nil {
		log.Debug(err)
		fmt.Fprintln(s.Out, "Error: Could not access webcam.")
		return err
	}
	defer src.Close()
	return s.stream(ctx, src, pal)
}

func (s *Session) stream(ctx context.Context, src core.Source, pal palette.Palette) error {
	log := logger.Scoped("session stream")
	pipe, done, err := s.pipeline(pal, true)
	if err != nil {
		return s.report(err)
	}
	defer done()

	win, err := s.OpenWindow()
	if err != nil {
		return s.report(err)
	}
	defer win.Close()

	state, err := pipe.RunStream(ctx, src, win)
	log.Debugf("Stream ended: %s", state)
	if errors.Is(err, context.Canceled) {
		log.Debug("Interrupted")
		return nil
	}
	if err != nil {
		return s.report(err)
	}
	return nil
}

// pipeline builds a renderer and pipeline for one run, done releases the renderer
func (s *Session) pipeline(pal palette.Palette, counter bool) (*core.Pipeline, func(), error) {
	r, err := render.New(s.CellSize)
	if err != nil {
		return nil, nil, err
	}
	pipe, err := core.New(pal, s.Width, r)
	if err != nil {
		_ = r.Close()
		return nil, nil, err
	}
	if counter && s.Progress != nil {
		pipe.WithProgress(progress.NewSpinner(s.Progress, "Rendering frames"))
	}
	return pipe, func() { _ = r.Close() }, nil
}

// report prints the user facing message for err and hands it back.
// Prompts already printed theirs.
func (s *Session) report(err error) error {
	switch apperr.KindOf(err) {
	case apperr.InvalidTopLevelChoice, apperr.InvalidPaletteChoice:
	case apperr.NoFileSelected:
		fmt.Fprintln(s.Out, "No file selected.")
	default:
		fmt.Fprintf(s.Out, "Error: %v\n", err)
	}
	return err
}
