package draw

import (
	"image"

	"mtoohey.com/boxdraw/internal/util"
)

// HorizDynLimitRatioSplitDrawer first draws left with its width limited to
// Ratio of the total, then draws right in whatever space remains after a
// blank column.
type HorizDynLimitRatioSplitDrawer struct {
	Ratio float64
	Left  DynWDrawer
	Right Drawer

	lastRightX *int
	scope
}

func (hdlrs *HorizDynLimitRatioSplitDrawer) setScope(r image.Rectangle) {
	hdlrs.Rectangle = r

	leftR := r
	leftR.Max.X = r.Min.X + int(float64(r.Dx())*hdlrs.Ratio)
	hdlrs.Left.setScope(leftR)

	// assume left fills its whole limit until it has been drawn
	rightX := leftR.Max.X + 1
	if hdlrs.lastRightX != nil {
		rightX = *hdlrs.lastRightX
	}
	hdlrs.Right.setScope(hdlrs.rightRect(rightX))
}

func (hdlrs *HorizDynLimitRatioSplitDrawer) rightRect(x int) image.Rectangle {
	r := hdlrs.Rectangle
	r.Min.X = util.Clamp(r.Min.X, x, r.Max.X)
	return r
}

func (hdlrs *HorizDynLimitRatioSplitDrawer) Draw(d drawFunc) error {
	leftStopX, err := hdlrs.Left.dynWDraw(d)
	if err != nil {
		return err
	}

	clear(d, image.Rect(leftStopX, hdlrs.Min.Y, leftStopX+1, hdlrs.Max.Y).Intersect(hdlrs.Rectangle))

	rightX := leftStopX + 1
	if hdlrs.lastRightX == nil || *hdlrs.lastRightX != rightX {
		hdlrs.lastRightX = &rightX

		// reset the right scope
		hdlrs.Right.setScope(hdlrs.rightRect(rightX))
	}
	return hdlrs.Right.Draw(d)
}

var _ Drawer = &HorizDynLimitRatioSplitDrawer{}
