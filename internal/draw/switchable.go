package draw

import "image"

// SwitchableDrawer draws one of Drawers at a time.
type SwitchableDrawer struct {
	Drawers []Drawer

	Tab int
	scope
}

func (s *SwitchableDrawer) setScope(r image.Rectangle) {
	s.Rectangle = r
	for _, d := range s.Drawers {
		d.setScope(r)
	}
}

// Cycle switches to the next drawer.
func (s *SwitchableDrawer) Cycle() {
	s.Tab = (s.Tab + 1) % len(s.Drawers)
}

func (s *SwitchableDrawer) Draw(d drawFunc) error {
	return s.Drawers[s.Tab].Draw(d)
}

var _ Drawer = &SwitchableDrawer{}
