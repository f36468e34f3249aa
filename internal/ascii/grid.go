package ascii

import "strings"

// Grid holds one glyph per output cell, rows top to bottom
type Grid [][]rune

func NewGrid(w, h int) Grid {
	store := make([]rune, w*h)
	g := make(Grid, h)
	for y := 0; y < h; y++ {
		g[y] = store[y*w : (y+1)*w]
	}
	return g
}

func (g Grid) Height() int {
	return len(g)
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) At(x, y int) rune {
	return g[y][x]
}

func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for _, row := range g {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
