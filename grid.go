package boxdraw

import (
	"fmt"
	"math"
	"strings"
)

// Glyphs used for the border of a box.
const (
	Corner    = '+'
	HorizEdge = '-'
	VertEdge  = '|'
)

const (
	// RowSep terminates every row of a picture.
	RowSep = '\n'
	// DefaultBackground is the background of scripts that don't set one.
	DefaultBackground = '.'
)

// Grid is a mutable, row-major buffer of runes.
type Grid struct {
	width, height uint32
	cells         []rune
}

// NewGrid returns a width x height grid with every cell set to background. It
// panics if the number of cells cannot be addressed.
func NewGrid(width, height uint32, background rune) *Grid {
	n := uint64(width) * uint64(height)
	if n > math.MaxInt {
		panic(fmt.Sprintf("boxdraw: grid %dx%d is too large", width, height))
	}

	cells := make([]rune, n)
	for i := range cells {
		cells[i] = background
	}

	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) Width() uint32 {
	return g.width
}

func (g *Grid) Height() uint32 {
	return g.height
}

func (g *Grid) index(x, y uint32) int {
	if x >= g.width || y >= g.height {
		panic(fmt.Sprintf("boxdraw: (%d, %d) out of range for %dx%d grid", x, y, g.width, g.height))
	}

	return int(y)*int(g.width) + int(x)
}

// Get returns the rune at (x, y). It panics if the point is outside the grid.
func (g *Grid) Get(x, y uint32) rune {
	return g.cells[g.index(x, y)]
}

// Set sets the rune at (x, y). It panics if the point is outside the grid.
func (g *Grid) Set(x, y uint32, r rune) {
	g.cells[g.index(x, y)] = r
}

// String returns the picture held by g: height lines of width runes, each
// followed by a newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(int(g.height) * (int(g.width) + 1))
	for y := uint32(0); y < g.height; y++ {
		for x := uint32(0); x < g.width; x++ {
			b.WriteRune(g.Get(x, y))
		}
		b.WriteRune(RowSep)
	}

	return b.String()
}

// Exec draws c onto g, overwriting whatever was there before.
func (g *Grid) Exec(c Command) {
	if err := checkAxis("x", c.X, c.W, g.width); err != nil {
		panic("boxdraw: " + err.Error())
	}
	if err := checkAxis("y", c.Y, c.H, g.height); err != nil {
		panic("boxdraw: " + err.Error())
	}

	if c.IsLine() {
		g.fill(c.X, c.Y, c.W, c.H, c.Fill)
		return
	}

	right, bottom := c.X+c.W-1, c.Y+c.H-1

	g.Set(c.X, c.Y, Corner)
	g.Set(right, c.Y, Corner)
	g.Set(c.X, bottom, Corner)
	g.Set(right, bottom, Corner)

	for x := c.X + 1; x < right; x++ {
		g.Set(x, c.Y, HorizEdge)
		g.Set(x, bottom, HorizEdge)
	}

	for y := c.Y + 1; y < bottom; y++ {
		g.Set(c.X, y, VertEdge)
		g.Set(right, y, VertEdge)
	}

	g.fill(c.X+1, c.Y+1, c.W-2, c.H-2, c.Fill)
}

// fill sets every cell from x..x+w and y..y+h (both non-inclusive) to r.
func (g *Grid) fill(x, y, w, h uint32, r rune) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			g.Set(i, j, r)
		}
	}
}
