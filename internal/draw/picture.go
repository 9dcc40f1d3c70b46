package draw

import (
	"fmt"

	"mtoohey.com/boxdraw"
)

const keyHelp = "tab: switch view  q: quit"

// NewPictureDrawer returns a drawer showing picture with a status line below
// it. Pictures that don't parse are reported in the status line.
func NewPictureDrawer(title, picture string) *VertFixedBotSplitDrawer {
	g, err := boxdraw.ParseGrid(picture)
	status := "q: quit"
	if err != nil {
		status = fmt.Sprintf("malformed picture: %v", err)
	} else {
		status = fmt.Sprintf("%dx%d  %s", g.Width(), g.Height(), status)
	}

	return &VertFixedBotSplitDrawer{
		BottomH: 1,
		Top:     &GridDrawer{Title: title, Grid: g, Empty: "malformed picture"},
		Bottom:  &TextDrawer{Text: status},
	}
}

// MismatchDrawer shows the goal and produced pictures of a mismatch side by
// side, with differing cells highlighted. Cycle switches to the textual
// report.
type MismatchDrawer struct {
	VertFixedBotSplitDrawer

	views *SwitchableDrawer
}

func NewMismatchDrawer(m *boxdraw.Mismatch) *MismatchDrawer {
	goal, _ := boxdraw.ParseGrid(m.Goal)
	produced := m.Script.Grid()

	differs := func(x, y uint32) bool {
		if goal == nil {
			return true
		}
		inGoal := x < goal.Width() && y < goal.Height()
		inProduced := x < produced.Width() && y < produced.Height()
		if !inGoal || !inProduced {
			return inGoal != inProduced
		}
		return goal.Get(x, y) != produced.Get(x, y)
	}

	md := &MismatchDrawer{
		views: &SwitchableDrawer{
			Drawers: []Drawer{
				&HorizDynLimitRatioSplitDrawer{
					Ratio: 0.5,
					Left:  &GridDrawer{Title: "goal", Grid: goal, Empty: "malformed picture"},
					Right: &GridDrawer{Title: "produced", Grid: produced, Highlight: differs},
				},
				&TextDrawer{Text: m.Report()},
			},
		},
	}
	md.BottomH = 1
	md.Top = md.views
	md.Bottom = &TextDrawer{Text: fmt.Sprintf("%v  %s", m, keyHelp)}

	return md
}

// Cycle switches between the side by side and textual views.
func (md *MismatchDrawer) Cycle() {
	md.views.Cycle()
}

var _ DrawSetScoper = &MismatchDrawer{}
