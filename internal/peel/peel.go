// Package peel undraws pictures by repeatedly removing the topmost visible
// rectangle.
//
// A rectangle can be peeled when every cell it covers either shows the glyph
// the rectangle would draw there, or belongs to a rectangle that was already
// peeled (and so was drawn later, on top of it). Peeled cells act as wildcards
// for everything underneath. Running the peeled rectangles in reverse order
// over the background reproduces the picture.
package peel

import (
	"io"
	"log/slog"
	"slices"

	"mtoohey.com/boxdraw"
	"mtoohey.com/boxdraw/internal/util"
)

// Peeler is a boxdraw.Undraw that peels rectangles off of the picture, trying
// each glyph of the picture as the background and keeping the shortest
// script.
type Peeler struct {
	// Logger receives debug output for each peeled rectangle. Nothing is
	// logged if it is nil.
	Logger *slog.Logger
	// Background, if set, is the only background tried.
	Background *rune
}

func (p Peeler) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return p.Logger
}

// Undraw implements boxdraw.Undraw. Pictures that don't parse produce an empty
// script, which CheckUndraw will report as a mismatch.
func (p Peeler) Undraw(picture string) boxdraw.Script {
	logger := p.logger()

	g, err := boxdraw.ParseGrid(picture)
	if err != nil {
		logger.Warn("failed to parse picture", "err", err)
		return boxdraw.NewScript(0, 0)
	}

	var best []boxdraw.Command
	var bestBg rune
	bgs := Backgrounds(g)
	if p.Background != nil {
		bgs = []rune{*p.Background}
	}

	for i, bg := range bgs {
		cmds := peelAll(g, bg, logger)
		logger.Debug("peeled picture", "background", string(bg), "commands", len(cmds))
		if i == 0 || len(cmds) < len(best) {
			best, bestBg = cmds, bg
		}
	}

	// peeled topmost first, drawn bottommost first
	slices.Reverse(best)
	return boxdraw.NewScriptBackgroundCommands(g.Width(), g.Height(), bestBg, best...)
}

var _ boxdraw.Undraw = Peeler{}

// Backgrounds returns the candidate backgrounds for g: the default background
// followed by every other glyph in g, most frequent first.
func Backgrounds(g *boxdraw.Grid) []rune {
	cells := make([]rune, 0, int(g.Width())*int(g.Height()))
	for y := uint32(0); y < g.Height(); y++ {
		for x := uint32(0); x < g.Width(); x++ {
			cells = append(cells, g.Get(x, y))
		}
	}

	bgs := []rune{boxdraw.DefaultBackground}
	for _, r := range util.ByCount(cells) {
		if r != boxdraw.DefaultBackground {
			bgs = append(bgs, r)
		}
	}

	return bgs
}

// peelAll returns the rectangles peeled off of g, topmost first, leaving only
// cells equal to bg.
func peelAll(g *boxdraw.Grid, bg rune, logger *slog.Logger) []boxdraw.Command {
	s := newState(g, bg)

	var cmds []boxdraw.Command
	for !s.done() {
		c, ok := s.box()
		if !ok {
			c = s.line()
		}
		s.peel(c)
		logger.Debug("peeled rectangle", "background", string(bg), "command", c.String())
		cmds = append(cmds, c)
	}

	return cmds
}
