package draw

import (
	"image"
	"unicode/utf8"

	"mtoohey.com/boxdraw/internal/util"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleDefault   = tcell.StyleDefault
	styleDim       = styleDefault.Dim(true)
	styleUnderline = styleDefault.Underline(true)
	styleDiff      = styleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack)
)

// fill uses d to fill r with ru.
func fill(d drawFunc, r image.Rectangle, ru rune, s tcell.Style) {
	for x := r.Min.X; x < r.Max.X; x++ {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			d(image.Pt(x, y), ru, s)
		}
	}
}

// clear uses d to clear r.
func clear(d drawFunc, r image.Rectangle) {
	fill(d, r, ' ', styleDefault)
}

// drawString draws s starting at o, truncating it with '…' if it would reach
// past maxX. A negative maxX disables truncation. It returns the x value after
// the last column drawn.
func drawString(d drawFunc, o image.Point, maxX int, s string, style tcell.Style) (stopX int) {
	c := o
	for r, rl := utf8.DecodeRuneInString(s); len(s) > 0; r, rl = utf8.DecodeRuneInString(s) {
		w := runewidth.RuneWidth(r)
		if maxX >= 0 && c.X+w >= maxX && !(c.X+w == maxX && len(s) == rl) {
			for ; c.X < maxX; c.X++ {
				d(c, '…', style)
			}
			return c.X
		}
		d(c, r, style)

		c.X += w
		s = s[rl:]
	}
	return c.X
}

// centeredString clears r, then draws s in its middle. It assumes
// len(s) == runewidth.StringWidth(s).
func centeredString(d drawFunc, r image.Rectangle, s string) {
	clear(d, r)
	textOrigin := image.Point{
		X: r.Min.X + util.Max(r.Dx()-len(s), 0)/2,
		Y: r.Min.Y + (r.Dy() / 2),
	}
	drawString(d, textOrigin, r.Max.X, s, styleDim.Italic(true).Foreground(tcell.ColorGray))
}
