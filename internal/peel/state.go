package peel

import "mtoohey.com/boxdraw"

type state struct {
	g      *boxdraw.Grid
	w, h   uint32
	bg     rune
	peeled []bool
}

func newState(g *boxdraw.Grid, bg rune) *state {
	return &state{
		g:      g,
		w:      g.Width(),
		h:      g.Height(),
		bg:     bg,
		peeled: make([]bool, int(g.Width())*int(g.Height())),
	}
}

func (s *state) isPeeled(x, y uint32) bool {
	return s.peeled[int(y)*int(s.w)+int(x)]
}

// is reports whether a rectangle may draw r at (x, y).
func (s *state) is(x, y uint32, r rune) bool {
	return s.isPeeled(x, y) || s.g.Get(x, y) == r
}

// visible reports whether (x, y) is unpeeled and differs from the background,
// meaning some rectangle still has to account for it.
func (s *state) visible(x, y uint32) bool {
	return !s.isPeeled(x, y) && s.g.Get(x, y) != s.bg
}

func (s *state) done() bool {
	for y := uint32(0); y < s.h; y++ {
		for x := uint32(0); x < s.w; x++ {
			if s.visible(x, y) {
				return false
			}
		}
	}

	return true
}

func (s *state) peel(c boxdraw.Command) {
	for y := c.Y; y < c.Y+c.H; y++ {
		for x := c.X; x < c.X+c.W; x++ {
			s.peeled[int(y)*int(s.w)+int(x)] = true
		}
	}
}

// box returns the first peelable box with both extents of at least 2, scanning
// top-left corners row by row.
func (s *state) box() (boxdraw.Command, bool) {
	for y0 := uint32(0); y0+1 < s.h; y0++ {
		for x0 := uint32(0); x0+1 < s.w; x0++ {
			if !s.is(x0, y0, boxdraw.Corner) {
				continue
			}

			for x1 := x0 + 1; x1 < s.w; x1++ {
				if s.is(x1, y0, boxdraw.Corner) {
					if c, ok := s.boxFrom(x0, y0, x1); ok {
						return c, true
					}
				}
				if !s.is(x1, y0, boxdraw.HorizEdge) {
					break
				}
			}
		}
	}

	return boxdraw.Command{}, false
}

// boxFrom returns the first peelable box whose top edge runs from (x0, y0) to
// (x1, y0), which the caller has already checked.
func (s *state) boxFrom(x0, y0, x1 uint32) (boxdraw.Command, bool) {
	for y1 := y0 + 1; y1 < s.h; y1++ {
		if s.is(x0, y1, boxdraw.Corner) && s.is(x1, y1, boxdraw.Corner) {
			if fill, ok := s.closes(x0, y0, x1, y1); ok {
				return boxdraw.Rect(x0, y0, x1-x0+1, y1-y0+1, fill), true
			}
		}
		if !s.is(x0, y1, boxdraw.VertEdge) || !s.is(x1, y1, boxdraw.VertEdge) {
			break
		}
	}

	return boxdraw.Command{}, false
}

// closes checks the bottom edge and interior of the box from (x0, y0) to
// (x1, y1) inclusive, and whether peeling it would make progress. It returns
// the fill shown by the interior, or the background if none of it is visible.
func (s *state) closes(x0, y0, x1, y1 uint32) (fill rune, ok bool) {
	for x := x0 + 1; x < x1; x++ {
		if !s.is(x, y1, boxdraw.HorizEdge) {
			return 0, false
		}
	}

	fill = s.bg
	haveFill := false
	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			if s.isPeeled(x, y) {
				continue
			}

			r := s.g.Get(x, y)
			if !haveFill {
				fill, haveFill = r, true
			} else if r != fill {
				return 0, false
			}
		}
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if s.visible(x, y) {
				return fill, true
			}
		}
	}

	return 0, false
}

// line returns a solid line or point starting at the first visible cell. It
// must only be called when the state isn't done.
func (s *state) line() boxdraw.Command {
	for y := uint32(0); y < s.h; y++ {
		for x := uint32(0); x < s.w; x++ {
			if !s.visible(x, y) {
				continue
			}

			r := s.g.Get(x, y)

			w := uint32(1)
			for x+w < s.w && s.is(x+w, y, r) {
				w++
			}

			h := uint32(1)
			for y+h < s.h && s.is(x, y+h, r) {
				h++
			}

			if w >= h {
				return boxdraw.Rect(x, y, w, 1, r)
			}
			return boxdraw.Rect(x, y, 1, h, r)
		}
	}

	panic("peel: line called with no visible cells")
}
