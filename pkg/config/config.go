package config

// NOTE: font scale and aspect correction are tuned together for the default cell size
const (
	// output grid width in characters
	OutputWidth = 150

	// glyph cells are taller than wide, squash rows to compensate
	AspectCorrection = 0.55

	// pixels per glyph on the canvas, both axes
	CellSize = 10

	// FontScale * FontUnit is the face size in points at 72 DPI
	FontScale = 0.3
	FontUnit  = 30

	// display
	WindowTitle = "ASCII Art"

	// capture
	CameraIndex = 0

	// external decoders
	BinFFmpeg  = "ffmpeg"
	BinFFprobe = "ffprobe"
)

// file picker filters, without the dot
var (
	ImageExtensions = []string{"png", "jpg", "jpeg", "bmp", "gif"}
	VideoExtensions = []string{"mp4", "avi", "mov", "mkv"}
)
