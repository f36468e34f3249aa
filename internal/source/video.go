package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/1F47E/go-asciireel/pkg/apperr"
	cfg "github.com/1F47E/go-asciireel/pkg/config"
	"github.com/1F47E/go-asciireel/pkg/logger"
)

// Video streams gray frames decoded by an ffmpeg subprocess
type Video struct {
	ctx    context.Context
	cancel context.CancelFunc
	path   string
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr *bytes.Buffer
	frames *RawReader

	reaped sync.Once
	err    error
}

// OpenVideo asks ffprobe for the frame size and starts the decoder
func OpenVideo(ctx context.Context, path string) (*Video, error) {
	log := logger.Scoped("source video")

	w, h, err := probeSize(ctx, path)
	if err != nil {
		return nil, apperr.New(apperr.SourceUnavailable, "probe "+path, err)
	}
	log.Debugf("Video %s is %dx%d", path, w, h)

	return startDecoder(ctx, path, cfg.BinFFmpeg, decodeArgs(path), w, h)
}

// decodeArgs asks ffmpeg for headerless 8-bit gray frames on stdout.
// Rotation metadata is ignored so frames keep the coded size ffprobe reports.
func decodeArgs(path string) []string {
	return []string{"-v", "error", "-noautorotate", "-i", path, "-f", "rawvideo", "-pix_fmt", "gray", "-"}
}

func startDecoder(ctx context.Context, path, bin string, args []string, w, h int) (*Video, error) {
	log := logger.Scoped("source video")

	ctx, cancel := context.WithCancel(ctx)
	log.Debugf("Running ffmpeg command: %s %s", bin, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, bin, args...)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, apperr.New(apperr.SourceUnavailable, "decode "+path, err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, apperr.New(apperr.SourceUnavailable, "decode "+path, err)
	}

	return &Video{
		ctx:    ctx,
		cancel: cancel,
		path:   path,
		cmd:    cmd,
		stdout: stdout,
		stderr: stderr,
		frames: NewRawReader(stdout, w, h),
	}, nil
}

// Read returns io.EOF once the decoder finished cleanly, its error otherwise
func (v *Video) Read() (*image.Gray, error) {
	img, err := v.frames.Read()
	if err == io.EOF {
		if werr := v.wait(); werr != nil {
			return nil, werr
		}
	}
	return img, err
}

// Close kills the decoder if it is still running and reaps it
func (v *Video) Close() error {
	v.cancel()
	_ = v.stdout.Close()
	return v.wait()
}

// wait reaps the decoder once. A non-zero exit is a failure only while the
// context is still live, after a cancel it is our own kill.
func (v *Video) wait() error {
	v.reaped.Do(func() {
		log := logger.Scoped("source video")
		err := v.cmd.Wait()
		msg := strings.TrimSpace(v.stderr.String())
		if msg != "" {
			log.Debugf("ffmpeg: %s", msg)
		}
		if err == nil || v.ctx.Err() != nil {
			return
		}
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		v.err = apperr.New(apperr.DecodeOrProcessingFailure, "decode "+v.path, err)
	})
	return v.err
}

// call ffprobe for the first video stream dimensions
func probeSize(ctx context.Context, path string) (int, int, error) {
	args := []string{"-v", "error", "-select_streams", "v:0",
		"-show_entries", "stream=width,height", "-of", "csv=s=x:p=0", path}
	logger.Log.Debugf("Running ffprobe command: %s %s", cfg.BinFFprobe, strings.Join(args, " "))
	out, err := exec.CommandContext(ctx, cfg.BinFFprobe, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return 0, 0, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return 0, 0, err
	}
	return parseSize(string(out))
}

// parseSize reads ffprobe "WxH" output
func parseSize(out string) (int, int, error) {
	line := strings.TrimSpace(out)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	if line == "" {
		return 0, 0, fmt.Errorf("no video stream")
	}
	ws, hs, ok := strings.Cut(line, "x")
	if !ok {
		return 0, 0, fmt.Errorf("unexpected size %q", line)
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, fmt.Errorf("bad width in %q: %w", line, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(hs, "x")))
	if err != nil {
		return 0, 0, fmt.Errorf("bad height in %q: %w", line, err)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("invalid size %dx%d", w, h)
	}
	return w, h, nil
}

// RawReader splits a headerless stream of 8-bit gray frames
type RawReader struct {
	r    io.Reader
	w, h int
}

func NewRawReader(r io.Reader, w, h int) *RawReader {
	return &RawReader{r: r, w: w, h: h}
}

// Read returns io.EOF at the end of the stream, a truncated last frame included
func (r *RawReader) Read() (*image.Gray, error) {
	img := image.NewGray(image.Rect(0, 0, r.w, r.h))
	_, err := io.ReadFull(r.r, img.Pix)
	if err == io.ErrUnexpectedEOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}
