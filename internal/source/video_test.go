package source

import (
	"context"
	"io"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"github.com/1F47E/go-asciireel/pkg/apperr"
)

func TestDecodeArgs(t *testing.T) {
	args := decodeArgs("clip.mov")

	rotate, input := -1, -1
	for i, a := range args {
		switch a {
		case "-noautorotate":
			rotate = i
		case "-i":
			input = i
		}
	}
	if rotate < 0 || input < 0 || rotate > input {
		t.Fatalf("-noautorotate must come before -i: %v", args)
	}
	if args[input+1] != "clip.mov" {
		t.Errorf("got input %q, want clip.mov", args[input+1])
	}
	want := []string{"-f", "rawvideo", "-pix_fmt", "gray", "-"}
	if got := args[len(args)-len(want):]; !reflect.DeepEqual(got, want) {
		t.Errorf("got output args %v, want %v", got, want)
	}
}

// shell stands in for ffmpeg
func shell(t *testing.T, script string, w, h int) *Video {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	v, err := startDecoder(context.Background(), "clip.mp4", "sh", []string{"-c", script}, w, h)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestDecoderFrames(t *testing.T) {
	v := shell(t, "printf abcdefgh", 2, 2)

	for i, want := range []string{"abcd", "efgh"} {
		img, err := v.Read()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if string(img.Pix) != want {
			t.Errorf("frame %d: got %q, want %q", i, img.Pix, want)
		}
	}
	if _, err := v.Read(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
	if err := v.Close(); err != nil {
		t.Errorf("close after clean exit: %v", err)
	}
}

func TestDecoderFailureWithoutFrames(t *testing.T) {
	v := shell(t, "echo 'Invalid data found when processing input' >&2; exit 1", 2, 2)

	_, err := v.Read()
	if !apperr.IsKind(err, apperr.DecodeOrProcessingFailure) {
		t.Fatalf("got %v, want processing failure", err)
	}
	if !strings.Contains(err.Error(), "Invalid data found") {
		t.Errorf("decoder output missing from %q", err.Error())
	}
	if err := v.Close(); !apperr.IsKind(err, apperr.DecodeOrProcessingFailure) {
		t.Errorf("close: got %v, want the same failure", err)
	}
}

func TestDecoderKilledOnClose(t *testing.T) {
	v := shell(t, "exec sleep 10", 2, 2)

	if err := v.Close(); err != nil {
		t.Errorf("killing a running decoder is not a failure: %v", err)
	}
}
