package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/1F47E/go-asciireel/pkg/apperr"
)

// Palette is an ordered set of glyphs, darkest (most ink) first.
// The zero value is not usable, build one with New.
type Palette struct {
	name   string
	glyphs []rune
}

func New(name, chars string) (Palette, error) {
	glyphs := []rune(chars)
	if len(glyphs) == 0 {
		return Palette{}, fmt.Errorf("palette %q: no characters", name)
	}
	return Palette{name: name, glyphs: glyphs}, nil
}

func (p Palette) Name() string {
	return p.name
}

func (p Palette) Len() int {
	return len(p.glyphs)
}

// Index maps a luminance sample to a glyph position.
// 255*N/256 < N, so the result is always a valid index.
func (p Palette) Index(v uint8) int {
	return int(v) * len(p.glyphs) / 256
}

func (p Palette) Glyph(v uint8) rune {
	return p.glyphs[p.Index(v)]
}

func (p Palette) At(i int) rune {
	return p.glyphs[i]
}

func (p Palette) String() string {
	return string(p.glyphs)
}

const (
	charsHigh   = "@%#*+=-:. "
	charsMedium = "@&%B8WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/|()1{}[]?-_+~<>i!lI;:,\"^`'. "
	charsLow    = "@#*+=:. "
)

// Table maps selector keys to palettes
type Table struct {
	entries map[string]Palette
}

// Default builds the three preset palettes keyed "1" to "3"
func Default() *Table {
	t := &Table{entries: make(map[string]Palette, 3)}
	for key, def := range map[string][2]string{
		"1": {"high contrast", charsHigh},
		"2": {"medium contrast", charsMedium},
		"3": {"low contrast", charsLow},
	} {
		p, err := New(def[0], def[1])
		if err != nil {
			// presets are constants
			panic(err)
		}
		t.entries[key] = p
	}
	return t
}

func (t *Table) Select(key string) (Palette, error) {
	key = strings.TrimSpace(key)
	p, ok := t.entries[key]
	if !ok {
		return Palette{}, apperr.New(apperr.InvalidPaletteChoice, "select palette",
			fmt.Errorf("unknown key %q", key))
	}
	return p, nil
}

// Keys returns selector keys in order
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
