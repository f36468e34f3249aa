package render

import (
	"image"
	"testing"

	"github.com/1F47E/go-asciireel/internal/ascii"
)

func grid(rows ...string) ascii.Grid {
	g := make(ascii.Grid, len(rows))
	for i, r := range rows {
		g[i] = []rune(r)
	}
	return g
}

func lit(img *image.Gray, rect image.Rectangle) int {
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if img.GrayAt(x, y).Y > 0 {
				n++
			}
		}
	}
	return n
}

func TestNewRejectsBadCell(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error")
	}
}

func TestCanvasSize(t *testing.T) {
	r, err := New(10)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	testCases := []struct {
		name string
		g    ascii.Grid
		w, h int
	}{
		{name: "single cell", g: grid("@"), w: 10, h: 10},
		{name: "wide", g: grid("@@@@@", "....."), w: 50, h: 20},
		{name: "tall", g: grid("#", "#", "#"), w: 10, h: 30},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := r.Render(tc.g)
			size := c.Bounds().Size()
			if size.X != tc.w || size.Y != tc.h {
				t.Errorf("got %v, want %dx%d", size, tc.w, tc.h)
			}
			if size.X%r.CellSize() != 0 || size.Y%r.CellSize() != 0 {
				t.Errorf("canvas %v is not a multiple of the cell size", size)
			}
		})
	}
}

func TestBlankGridStaysBlack(t *testing.T) {
	r, err := New(10)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	c := r.Render(grid("    ", "    ", "    "))
	if n := lit(c, c.Bounds()); n != 0 {
		t.Errorf("got %d lit pixels, want 0", n)
	}
}

func TestGlyphLandsAboveItsBaseline(t *testing.T) {
	r, err := New(10)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	// baseline of row 1 is y=10, so '@' ink lands in the first cell row
	c := r.Render(grid("  ", "@ ", "  "))
	if n := lit(c, image.Rect(0, 0, 10, 10)); n == 0 {
		t.Errorf("expected ink above the row 1 baseline")
	}
	if n := lit(c, image.Rect(10, 0, 20, 30)); n != 0 {
		t.Errorf("got %d lit pixels in the empty column", n)
	}
	if n := lit(c, image.Rect(0, 20, 20, 30)); n != 0 {
		t.Errorf("got %d lit pixels in the last cell row", n)
	}
}

func TestDenseGlyphHasMoreInk(t *testing.T) {
	r, err := New(10)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	dense := r.Render(grid(" ", "@"))
	sparse := r.Render(grid(" ", "."))
	if lit(dense, dense.Bounds()) <= lit(sparse, sparse.Bounds()) {
		t.Errorf("'@' should light more pixels than '.'")
	}
}
