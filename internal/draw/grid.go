package draw

import (
	"image"

	"mtoohey.com/boxdraw"
	"mtoohey.com/boxdraw/internal/util"

	"github.com/mattn/go-runewidth"
)

// GridDrawer draws a grid from the top-left of its box, under an optional
// title row. Cells that don't fit are clipped, and the rest of the box is
// cleared.
type GridDrawer struct {
	Title string
	// Grid is the grid to draw. If it is nil, Empty is shown instead.
	Grid  *boxdraw.Grid
	Empty string
	// Highlight, if set, reports which cells should stand out.
	Highlight func(x, y uint32) bool

	scope
}

// dynWDraw draws only as many columns as the title and grid need. Empty
// takes the whole width.
func (g *GridDrawer) dynWDraw(d drawFunc) (stopX int, err error) {
	r := g.Rectangle
	if g.Grid != nil {
		w := util.Max(runewidth.StringWidth(g.Title), int(g.Grid.Width()))
		r.Max.X = util.Min(r.Max.X, r.Min.X+w)
	}

	if g.Title != "" && r.Dy() > 0 {
		x := drawString(d, r.Min, r.Max.X, g.Title, styleUnderline)
		clear(d, image.Rect(x, r.Min.Y, r.Max.X, r.Min.Y+1))
		r.Min.Y++
	}

	if g.Grid == nil {
		centeredString(d, r, g.Empty)
		return r.Max.X, nil
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			gx, gy := uint32(x-r.Min.X), uint32(y-r.Min.Y)
			if gx >= g.Grid.Width() || gy >= g.Grid.Height() {
				d(image.Pt(x, y), ' ', styleDefault)
				continue
			}

			ru, style := g.Grid.Get(gx, gy), styleDefault
			// wide or zero-width runes would shift the rest of the row
			if runewidth.RuneWidth(ru) != 1 {
				ru, style = '?', styleDim
			}
			if g.Highlight != nil && g.Highlight(gx, gy) {
				style = styleDiff
			}
			d(image.Pt(x, y), ru, style)
		}
	}

	return r.Max.X, nil
}

func (g *GridDrawer) Draw(d drawFunc) error {
	stopX, err := g.dynWDraw(d)
	if err != nil {
		return err
	}

	clear(d, image.Rect(stopX, g.Min.Y, g.Max.X, g.Max.Y))
	return nil
}

var (
	_ Drawer     = &GridDrawer{}
	_ DynWDrawer = &GridDrawer{}
)
