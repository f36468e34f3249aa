package progress

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Counter ticks once per rendered frame.
// A nil *Counter is valid and does nothing.
type Counter struct {
	bar *progressbar.ProgressBar
}

// NewSpinner creates an open ended counter, total frames are unknown for streams
func NewSpinner(w io.Writer, desc string) *Counter {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]/[reset]",
			SaucerHead:    "[green]/[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	_ = bar.RenderBlank()
	return &Counter{bar: bar}
}

func (c *Counter) Add(n int) {
	if c == nil {
		return
	}
	_ = c.bar.Add(n)
}

func (c *Counter) Finish() {
	if c == nil {
		return
	}
	_ = c.bar.Finish()
}
