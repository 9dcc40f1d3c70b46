package draw

import "image"

// VertFixedBotSplitDrawer draws top and bottom respectively above and below
// each other, providing bottom with a height of BottomH and top with the
// remaining vertical space. It draws no lines.
type VertFixedBotSplitDrawer struct {
	BottomH     int
	Top, Bottom Drawer

	scope
}

func (vfbs *VertFixedBotSplitDrawer) SetScope(r image.Rectangle) {
	vfbs.setScope(r)
}

func (vfbs *VertFixedBotSplitDrawer) setScope(r image.Rectangle) {
	vfbs.Rectangle = r

	splitY := r.Max.Y - vfbs.BottomH
	if splitY < r.Min.Y {
		splitY = r.Min.Y
	}

	vfbs.Top.setScope(image.Rectangle{
		Min: r.Min,
		Max: image.Pt(r.Max.X, splitY),
	})
	vfbs.Bottom.setScope(image.Rectangle{
		Min: image.Pt(r.Min.X, splitY),
		Max: r.Max,
	})
}

func (vfbs *VertFixedBotSplitDrawer) Draw(d drawFunc) error {
	if err := vfbs.Top.Draw(d); err != nil {
		return err
	}
	return vfbs.Bottom.Draw(d)
}

var _ DrawSetScoper = &VertFixedBotSplitDrawer{}
