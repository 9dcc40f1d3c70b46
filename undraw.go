package boxdraw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Undraw is the inverse of drawing: given a picture, it creates a script to
// draw that picture.
type Undraw interface {
	// Undraw returns a script that, when run, should produce picture, a string
	// holding a rectangular ASCII art image.
	Undraw(picture string) Script
}

// UndrawFunc adapts an ordinary function to the Undraw interface.
type UndrawFunc func(picture string) Script

// Undraw calls f(picture).
func (f UndrawFunc) Undraw(picture string) Script {
	return f(picture)
}

// ErrMismatch is matched by every *Mismatch using errors.Is.
var ErrMismatch = errors.New("undraw produced a different picture")

// Mismatch is returned by CheckUndraw when the script produced by an Undraw
// doesn't reproduce the original picture.
type Mismatch struct {
	// Script is the script returned by the Undraw.
	Script Script
	// Goal is the original picture.
	Goal string
	// Produced is the picture that Script actually draws.
	Produced string
}

func (m *Mismatch) Error() string {
	row, col, ok := m.FirstDiff()
	if !ok {
		return ErrMismatch.Error()
	}

	return fmt.Sprintf("%s: first difference at row %d, column %d", ErrMismatch, row, col)
}

func (m *Mismatch) Is(target error) bool {
	return target == ErrMismatch
}

// FirstDiff returns the 1-indexed row and column of the first rune that
// differs between Goal and Produced. A line present in only one of the two is
// reported at column 1 of that line. ok is false if the two are equal.
func (m *Mismatch) FirstDiff() (row, col int, ok bool) {
	goal := strings.Split(m.Goal, string(RowSep))
	produced := strings.Split(m.Produced, string(RowSep))

	for i := 0; i < len(goal) || i < len(produced); i++ {
		if i >= len(goal) || i >= len(produced) {
			return i + 1, 1, true
		}

		g, p := []rune(goal[i]), []rune(produced[i])
		for j := 0; j < len(g) || j < len(p); j++ {
			if j >= len(g) || j >= len(p) || g[j] != p[j] {
				return i + 1, j + 1, true
			}
		}
	}

	return 0, 0, false
}

// Report renders the goal and produced pictures side by side, followed by the
// commands of the script, so that the difference can be inspected by eye.
func (m *Mismatch) Report() string {
	goal := strings.Split(strings.TrimSuffix(m.Goal, string(RowSep)), string(RowSep))
	produced := strings.Split(strings.TrimSuffix(m.Produced, string(RowSep)), string(RowSep))

	const goalHeader = "goal"
	colW := runewidth.StringWidth(goalHeader)
	for _, line := range goal {
		if w := runewidth.StringWidth(line); w > colW {
			colW = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  produced\n", runewidth.FillRight(goalHeader, colW))
	for i := 0; i < len(goal) || i < len(produced); i++ {
		var g, p string
		if i < len(goal) {
			g = goal[i]
		}
		if i < len(produced) {
			p = produced[i]
		}

		marker := ' '
		if g != p {
			marker = '*'
		}
		fmt.Fprintf(&b, "%s %c%s\n", runewidth.FillRight(g, colW), marker, p)
	}

	fmt.Fprintf(&b, "script %dx%d background %q:\n", m.Script.Width, m.Script.Height, m.Script.Background)
	for _, c := range m.Script.commands {
		fmt.Fprintf(&b, "  %v\n", c)
	}

	return b.String()
}

// CheckUndraw runs u on picture, then runs the resulting script. If the
// script reproduces picture exactly, it is returned with a nil error.
// Otherwise the script is returned along with a *Mismatch.
func CheckUndraw(picture string, u Undraw) (Script, error) {
	script := u.Undraw(picture)
	produced := script.Run()
	if produced != picture {
		return script, &Mismatch{
			Script:   script,
			Goal:     picture,
			Produced: produced,
		}
	}

	return script, nil
}
