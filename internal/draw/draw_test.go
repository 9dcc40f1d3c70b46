package draw

import (
	"errors"
	"image"
	"strings"
	"testing"

	"mtoohey.com/boxdraw"
	"mtoohey.com/boxdraw/internal/testutil/assert"

	"github.com/gdamore/tcell/v2"
)

type cell struct {
	r rune
	s tcell.Style
}

type canvas map[image.Point]cell

func (c canvas) draw(p image.Point, r rune, s tcell.Style) {
	c[p] = cell{r, s}
}

// rows renders the cells of c within r, using '\x00' for cells that were never
// drawn.
func (c canvas) rows(r image.Rectangle) []string {
	var rows []string
	for y := r.Min.Y; y < r.Max.Y; y++ {
		var b strings.Builder
		for x := r.Min.X; x < r.Max.X; x++ {
			b.WriteRune(c[image.Pt(x, y)].r)
		}
		rows = append(rows, b.String())
	}
	return rows
}

func render(t *testing.T, dr Drawer, r image.Rectangle) canvas {
	t.Helper()

	c := canvas{}
	dr.setScope(r)
	assert.NoError(t, dr.Draw(c.draw))
	return c
}

func mustParse(t *testing.T, s string) *boxdraw.Grid {
	t.Helper()

	g, err := boxdraw.ParseGrid(s)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGridDrawer(t *testing.T) {
	g := mustParse(t, ".+-+.\n.|b|.\n.+-+.\n")

	t.Run("title", func(t *testing.T) {
		r := image.Rect(0, 0, 7, 5)
		c := render(t, &GridDrawer{Title: "pic", Grid: g}, r)
		assert.Equal(t, []string{
			"pic    ",
			".+-+.  ",
			".|b|.  ",
			".+-+.  ",
			"       ",
		}, c.rows(r))
		assert.Equal(t, styleUnderline, c[image.Pt(0, 0)].s)
	})

	t.Run("clipped", func(t *testing.T) {
		r := image.Rect(2, 1, 5, 3)
		c := render(t, &GridDrawer{Grid: g}, r)
		assert.Equal(t, []string{".+-", ".|b"}, c.rows(r))
		assert.Equal(t, 6, len(c))
	})

	t.Run("empty", func(t *testing.T) {
		r := image.Rect(0, 0, 8, 3)
		c := render(t, &GridDrawer{Empty: "none"}, r)
		assert.Equal(t, []string{"        ", "  none  ", "        "}, c.rows(r))
	})

	t.Run("highlight", func(t *testing.T) {
		r := image.Rect(0, 0, 5, 3)
		c := render(t, &GridDrawer{Grid: g, Highlight: func(x, y uint32) bool {
			return x == 2 && y == 1
		}}, r)
		assert.Equal(t, styleDiff, c[image.Pt(2, 1)].s)
		assert.Equal(t, styleDefault, c[image.Pt(1, 1)].s)
	})

	t.Run("wide", func(t *testing.T) {
		r := image.Rect(0, 0, 2, 1)
		c := render(t, &GridDrawer{Grid: mustParse(t, "a世")}, r)
		assert.Equal(t, []string{"a?"}, c.rows(r))
		assert.Equal(t, styleDim, c[image.Pt(1, 0)].s)
	})
}

func TestTextDrawer(t *testing.T) {
	r := image.Rect(0, 0, 5, 3)
	c := render(t, &TextDrawer{Text: "hi\nlonger line\n"}, r)
	assert.Equal(t, []string{"hi   ", "long…", "     "}, c.rows(r))
}

func TestHorizDynLimitRatioSplitDrawer(t *testing.T) {
	r := image.Rect(0, 0, 8, 2)
	hdlrs := &HorizDynLimitRatioSplitDrawer{
		Ratio: 0.5,
		Left:  &GridDrawer{Grid: mustParse(t, "ab\ncd\n")},
		Right: &FillDrawer{R: 'r'},
	}

	c := render(t, hdlrs, r)
	assert.Equal(t, []string{"ab rrrrr", "cd rrrrr"}, c.rows(r))

	// left is limited to half the width
	hdlrs.Left = &GridDrawer{Grid: mustParse(t, "abcdef\n")}
	c = render(t, hdlrs, r)
	assert.Equal(t, []string{"abcd rrr", "     rrr"}, c.rows(r))
}

func TestSwitchableDrawer(t *testing.T) {
	r := image.Rect(0, 0, 2, 1)
	s := &SwitchableDrawer{Drawers: []Drawer{
		&FillDrawer{R: 'a'},
		&FillDrawer{R: 'b'},
	}}

	assert.Equal(t, []string{"aa"}, render(t, s, r).rows(r))
	s.Cycle()
	assert.Equal(t, []string{"bb"}, render(t, s, r).rows(r))
	s.Cycle()
	assert.Equal(t, 0, s.Tab)
}

func TestNewPictureDrawer(t *testing.T) {
	r := image.Rect(0, 0, 12, 3)

	c := render(t, NewPictureDrawer("p", "ab\ncd\n"), r)
	assert.Equal(t, []string{
		"p           ",
		"ab          ",
		"2x2  q: quit",
	}, c.rows(r))

	c = render(t, NewPictureDrawer("p", "ab\nc"), r)
	assert.True(t, strings.HasPrefix(c.rows(r)[2], "malformed"))
}

func mismatch(t *testing.T) *boxdraw.Mismatch {
	t.Helper()

	_, err := boxdraw.CheckUndraw("+-+\n|a|\n+-+\n", boxdraw.UndrawFunc(func(string) boxdraw.Script {
		return boxdraw.NewScriptCommands(3, 3, boxdraw.Rect(0, 0, 3, 3, 'b'))
	}))

	var m *boxdraw.Mismatch
	if !errors.As(err, &m) {
		t.Fatalf("expected mismatch, actual: %v", err)
	}
	return m
}

func TestMismatchDrawer(t *testing.T) {
	m := mismatch(t)
	md := NewMismatchDrawer(m)

	r := image.Rect(0, 0, 9, 5)
	c := render(t, md, r)
	assert.Equal(t, []string{
		"goal pro…",
		"+-+  +-+ ",
		"|a|  |b| ",
		"+-+  +-+ ",
	}, c.rows(r)[:4])
	assert.Equal(t, styleDiff, c[image.Pt(6, 2)].s)
	assert.Equal(t, styleDefault, c[image.Pt(5, 2)].s)

	md.Cycle()
	c = render(t, md, r)
	assert.Equal(t, "goal  pr…", c.rows(r)[0])
}

func TestLoop(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(9, 5)

	md := NewMismatchDrawer(mismatch(t))

	screen.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	assert.NoError(t, Loop(screen, md))
	assert.Equal(t, 1, md.views.Tab)

	cells, w, _ := screen.GetContents()
	var top strings.Builder
	for _, c := range cells[:w] {
		top.WriteRune(c.Runes[0])
	}
	assert.Equal(t, "goal  pr…", top.String())
}
