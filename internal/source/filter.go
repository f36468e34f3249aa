package source

import (
	"path/filepath"
	"strings"

	cfg "github.com/1F47E/go-asciireel/pkg/config"
)

// Filter names a family of file extensions a source accepts
type Filter struct {
	Name       string
	Extensions []string
}

var (
	ImageFiles = Filter{Name: "Image Files", Extensions: cfg.ImageExtensions}
	VideoFiles = Filter{Name: "Video Files", Extensions: cfg.VideoExtensions}
)

// Match reports whether path has one of the filter extensions, case insensitive
func (f Filter) Match(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, e := range f.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
