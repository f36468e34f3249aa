package display

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/1F47E/go-asciireel/pkg/logger"
)

// Window is an OpenCV HighGUI window
type Window struct {
	w *gocv.Window
}

func NewWindow(title string) *Window {
	return &Window{w: gocv.NewWindow(title)}
}

// Show blits the canvas and pumps window events
func (w *Window) Show(canvas *image.Gray) error {
	mat, err := gocv.ImageGrayToMatGray(canvas)
	if err != nil {
		return fmt.Errorf("canvas to mat: %w", err)
	}
	defer mat.Close()
	w.w.IMShow(mat)
	w.w.WaitKey(1)
	return nil
}

// IsOpen is false once the user closed the window
func (w *Window) IsOpen() bool {
	return w.w.GetWindowProperty(gocv.WindowPropertyVisible) >= 1
}

// Wait blocks until a key is pressed or the window is closed
func (w *Window) Wait() {
	log := logger.Scoped("display")
	for w.IsOpen() {
		if key := w.w.WaitKey(100); key >= 0 {
			log.Debugf("Dismissed with key %d", key)
			return
		}
	}
	log.Debug("Window closed")
}

func (w *Window) Close() error {
	return w.w.Close()
}
