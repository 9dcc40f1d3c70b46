package boxdraw

import (
	"errors"
	"strings"
	"testing"

	"mtoohey.com/boxdraw/internal/testutil/assert"
)

func constUndraw(s Script) Undraw {
	return UndrawFunc(func(string) Script { return s })
}

func TestCheckUndraw(t *testing.T) {
	picture := "" +
		".....\n" +
		".+-+.\n" +
		".|b|.\n" +
		".+-+.\n"

	t.Run("reproduced", func(t *testing.T) {
		want := NewScriptCommands(5, 4, Rect(1, 1, 3, 3, 'b'))
		s, err := CheckUndraw(picture, constUndraw(want))
		assert.NoError(t, err)
		assert.Equal(t, want, s)
	})

	t.Run("passes picture through", func(t *testing.T) {
		var got string
		_, _ = CheckUndraw(picture, UndrawFunc(func(p string) Script {
			got = p
			return NewScript(1, 1)
		}))
		assert.Equal(t, picture, got)
	})

	t.Run("wrong fill", func(t *testing.T) {
		bad := NewScriptCommands(5, 4, Rect(1, 1, 3, 3, 'c'))
		s, err := CheckUndraw(picture, constUndraw(bad))
		assert.Equal(t, bad, s)
		assert.True(t, errors.Is(err, ErrMismatch))

		m, ok := assert.ErrorAs[*Mismatch](t, err)
		if !ok {
			return
		}
		assert.Equal(t, bad, m.Script)
		assert.Equal(t, picture, m.Goal)
		assert.Equal(t, ".....\n.+-+.\n.|c|.\n.+-+.\n", m.Produced)

		row, col, ok := m.FirstDiff()
		assert.True(t, ok)
		assert.Equal(t, 3, row)
		assert.Equal(t, 3, col)
		assert.Equal(t, "undraw produced a different picture: first difference at row 3, column 3", err.Error())
	})

	t.Run("wrong size", func(t *testing.T) {
		_, err := CheckUndraw(picture, constUndraw(NewScript(5, 5)))
		m, ok := assert.ErrorAs[*Mismatch](t, err)
		if !ok {
			return
		}
		row, col, ok := m.FirstDiff()
		assert.True(t, ok)
		assert.Equal(t, 2, row)
		assert.Equal(t, 2, col)
	})

	// reproduction is byte-exact, so a missing trailing newline never matches
	t.Run("missing trailing newline", func(t *testing.T) {
		_, err := CheckUndraw("...", constUndraw(NewScript(3, 1)))
		m, ok := assert.ErrorAs[*Mismatch](t, err)
		if !ok {
			return
		}
		assert.Equal(t, "...\n", m.Produced)
		row, col, ok := m.FirstDiff()
		assert.True(t, ok)
		assert.Equal(t, 2, row)
		assert.Equal(t, 1, col)
	})
}

func TestMismatch_Report(t *testing.T) {
	m := &Mismatch{
		Script:   NewScriptCommands(3, 2, Rect(0, 0, 1, 1, 'x')),
		Goal:     "y..\n...\n",
		Produced: "x..\n...\n",
	}

	assert.Equal(t, ""+
		"goal  produced\n"+
		"y..  *x..\n"+
		"...   ...\n"+
		"script 3x2 background '.':\n"+
		"  rect(0, 0, 1, 1, 'x')\n", m.Report())
	assert.True(t, strings.Contains(m.Error(), "row 1, column 1"))
}
