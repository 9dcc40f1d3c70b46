package draw

import (
	"image"
	"strings"
)

// TextDrawer draws lines of text, truncating any that don't fit.
type TextDrawer struct {
	Text string

	scope
}

func (t *TextDrawer) Draw(d drawFunc) error {
	if t.Text == "" {
		clear(d, t.Rectangle)
		return nil
	}

	y := t.Min.Y
	for _, line := range strings.Split(strings.TrimSuffix(t.Text, "\n"), "\n") {
		if y >= t.Max.Y {
			break
		}
		x := drawString(d, image.Pt(t.Min.X, y), t.Max.X, line, styleDefault)
		clear(d, image.Rect(x, y, t.Max.X, y+1))
		y++
	}

	clear(d, image.Rect(t.Min.X, y, t.Max.X, t.Max.Y))

	return nil
}

var _ Drawer = &TextDrawer{}
