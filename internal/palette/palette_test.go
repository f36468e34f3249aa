package palette

import (
	"reflect"
	"testing"

	"github.com/1F47E/go-asciireel/pkg/apperr"
)

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New("empty", ""); err == nil {
		t.Fatal("expected error for empty palette")
	}
}

func TestIndexInRange(t *testing.T) {
	table := Default()
	extra, err := New("single", "x")
	if err != nil {
		t.Fatal(err)
	}
	palettes := []Palette{extra}
	for _, k := range table.Keys() {
		p, err := table.Select(k)
		if err != nil {
			t.Fatal(err)
		}
		palettes = append(palettes, p)
	}

	for _, p := range palettes {
		n := p.Len()
		for v := 0; v <= 255; v++ {
			idx := p.Index(uint8(v))
			if idx < 0 || idx >= n {
				t.Fatalf("%s: v=%d idx=%d out of [0,%d)", p.Name(), v, idx, n)
			}
			if want := v * n / 256; idx != want {
				t.Fatalf("%s: v=%d got %d, want %d", p.Name(), v, idx, want)
			}
			if p.Glyph(uint8(v)) != p.At(idx) {
				t.Fatalf("%s: glyph mismatch at v=%d", p.Name(), v)
			}
		}
		if p.Index(0) != 0 {
			t.Errorf("%s: black should map to 0", p.Name())
		}
		if p.Index(255) != n-1 {
			t.Errorf("%s: white should map to %d", p.Name(), n-1)
		}
	}
}

func TestSelect(t *testing.T) {
	table := Default()
	testCases := []struct {
		name    string
		key     string
		want    string
		wantLen int
	}{
		{name: "high", key: "1", want: "@%#*+=-:. ", wantLen: 10},
		{name: "medium", key: "2", wantLen: 68},
		{name: "low", key: "3", want: "@#*+=:. ", wantLen: 8},
		{name: "whitespace", key: " 3\n", want: "@#*+=:. ", wantLen: 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := table.Select(tc.key)
			if err != nil {
				t.Fatal(err)
			}
			if p.Len() != tc.wantLen {
				t.Errorf("got len %d, want %d", p.Len(), tc.wantLen)
			}
			if tc.want != "" && p.String() != tc.want {
				t.Errorf("got %q, want %q", p.String(), tc.want)
			}
		})
	}
}

func TestSelectInvalid(t *testing.T) {
	for _, key := range []string{"", "0", "4", "9", "a", "12"} {
		_, err := Default().Select(key)
		if !apperr.IsKind(err, apperr.InvalidPaletteChoice) {
			t.Errorf("key %q: got %v, want invalid palette choice", key, err)
		}
	}
}

func TestLowContrastMidGray(t *testing.T) {
	p, err := Default().Select("3")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Index(128); got != 4 {
		t.Errorf("got index %d, want 4", got)
	}
	if got := p.Glyph(128); got != '=' {
		t.Errorf("got %q, want '='", got)
	}
}

func TestKeys(t *testing.T) {
	got := Default().Keys()
	want := []string{"1", "2", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
