package draw

// FillDrawer fills its whole box with R.
type FillDrawer struct {
	R rune

	scope
}

func (f *FillDrawer) Draw(d drawFunc) error {
	fill(d, f.Rectangle, f.R, styleDim)
	return nil
}

var _ Drawer = &FillDrawer{}
