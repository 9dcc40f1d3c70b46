package boxdraw

import "fmt"

// Command draws a rectangle at (X, Y) with width W and height H, filled with
// Fill if there is room for it.
type Command struct {
	X, Y uint32
	W, H uint32
	Fill rune
}

// Rect returns the command drawing a rectangle at (x, y) with width w and
// height h, filled with fill. It panics if either extent is zero.
func Rect(x, y, w, h uint32, fill rune) Command {
	if w == 0 || h == 0 {
		panic(fmt.Sprintf("boxdraw: rect with zero extent %dx%d", w, h))
	}

	return Command{X: x, Y: y, W: w, H: h, Fill: fill}
}

// IsLine reports whether c is drawn as a solid line or point instead of a
// bordered box.
func (c Command) IsLine() bool {
	return c.W == 1 || c.H == 1
}

func (c Command) String() string {
	return fmt.Sprintf("rect(%d, %d, %d, %d, %q)", c.X, c.Y, c.W, c.H, c.Fill)
}
