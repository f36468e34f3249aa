package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/1F47E/go-asciireel/internal/capture"
	"github.com/1F47E/go-asciireel/internal/core"
	"github.com/1F47E/go-asciireel/internal/display"
	"github.com/1F47E/go-asciireel/internal/palette"
	"github.com/1F47E/go-asciireel/internal/picker"
	"github.com/1F47E/go-asciireel/internal/session"
	"github.com/1F47E/go-asciireel/internal/source"
	"github.com/1F47E/go-asciireel/pkg/apperr"
	cfg "github.com/1F47E/go-asciireel/pkg/config"
	"github.com/1F47E/go-asciireel/pkg/logger"
)

var app = cli.NewApp()
var log = logger.Log

// built once, handed to every session
var palettes = palette.Default()

var ctx context.Context

var widthFlag = cli.IntFlag{
	Name:  "width, w",
	Value: cfg.OutputWidth,
	Usage: "output width in characters",
}

var paletteFlag = cli.StringFlag{
	Name:  "palette, p",
	Value: "1",
	Usage: "contrast level: 1 high, 2 medium, 3 low",
}

func init() {
	app.Name = "asciireel"
	app.Usage = "Render images, videos and webcam as ASCII art"
	app.UsageText = "asciireel [command] [options] [filename]"
	app.HideVersion = true
	app.Flags = []cli.Flag{widthFlag}
	app.Action = func(c *cli.Context) error {
		s, err := newSession(c.Int("width"))
		if err != nil {
			return err
		}
		return exit(s.Interactive(ctx))
	}
	app.Commands = []cli.Command{
		{
			Name:      "image",
			Aliases:   []string{"i"},
			Usage:     "Show an image",
			ArgsUsage: "filename",
			Flags:     []cli.Flag{paletteFlag, widthFlag},
			Action: func(c *cli.Context) error {
				filename, err := getFilename(c)
				if err != nil {
					return err
				}
				s, pal, err := setup(c)
				if err != nil {
					return err
				}
				return exit(s.Image(ctx, filename, pal))
			},
		},
		{
			Name:      "video",
			Aliases:   []string{"v"},
			Usage:     "Play a video",
			ArgsUsage: "filename",
			Flags:     []cli.Flag{paletteFlag, widthFlag},
			Action: func(c *cli.Context) error {
				filename, err := getFilename(c)
				if err != nil {
					return err
				}
				s, pal, err := setup(c)
				if err != nil {
					return err
				}
				return exit(s.Video(ctx, filename, pal))
			},
		},
		{
			Name:    "webcam",
			Aliases: []string{"w"},
			Usage:   "Stream the default camera",
			Flags:   []cli.Flag{paletteFlag, widthFlag},
			Action: func(c *cli.Context) error {
				s, pal, err := setup(c)
				if err != nil {
					return err
				}
				return exit(s.Webcam(ctx, pal))
			},
		},
	}
}

func getFilename(c *cli.Context) (string, error) {
	f := c.Args().Get(0)
	if f == "" {
		return "", fmt.Errorf("Filename is required")
	}
	return f, nil
}

func setup(c *cli.Context) (*session.Session, palette.Palette, error) {
	pal, err := palettes.Select(c.String("palette"))
	if err != nil {
		return nil, palette.Palette{}, err
	}
	s, err := newSession(c.Int("width"))
	if err != nil {
		return nil, palette.Palette{}, err
	}
	return s, pal, nil
}

func newSession(width int) (*session.Session, error) {
	if width < 1 {
		return nil, fmt.Errorf("width must be positive, got %d", width)
	}
	return &session.Session{
		In:       os.Stdin,
		Out:      os.Stdout,
		Palettes: palettes,
		Width:    width,
		CellSize: cfg.CellSize,
		Pick:     picker.Pick,
		OpenImage: func(path string) (core.Source, error) {
			return source.OpenImage(path), nil
		},
		OpenVideo: func(ctx context.Context, path string) (core.Source, error) {
			v, err := source.OpenVideo(ctx, path)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		OpenCamera: func(index int) (core.Source, error) {
			cam, err := capture.OpenCamera(index)
			if err != nil {
				return nil, err
			}
			return cam, nil
		},
		OpenWindow: func() (session.Window, error) {
			return display.NewWindow(cfg.WindowTitle), nil
		},
		Progress: os.Stderr,
	}, nil
}

// exit maps session errors to the process status, the session already told the user
func exit(err error) error {
	if err == nil || apperr.IsKind(err, apperr.NoFileSelected) {
		return nil
	}
	// interrupted by a signal, same as a normal stop
	if errors.Is(err, context.Canceled) {
		return nil
	}
	log.Debug(err)
	return cli.NewExitError("", 1)
}

func main() {
	var stop context.CancelFunc
	ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
