package boxdraw

import "fmt"

// ParseError is returned by ParseGrid when a picture is malformed. It is
// either a *PrematureLineEndError or a *BadTerminationCharError.
type ParseError interface {
	error
	parseError()
}

// PrematureLineEndError indicates that the input ended partway through a row.
type PrematureLineEndError struct {
	// Row is the 1-indexed row that was cut short.
	Row int
	// Partial is the content of the row that was read.
	Partial string
	// ExpectedWidth is the width of the first row.
	ExpectedWidth int
}

func (e *PrematureLineEndError) Error() string {
	return fmt.Sprintf("row %d ended after %q, expected %d characters",
		e.Row, e.Partial, e.ExpectedWidth)
}

func (*PrematureLineEndError) parseError() {}

// BadTerminationCharError indicates that a full row was followed by something
// other than a row separator or the end of input.
type BadTerminationCharError struct {
	// Row is the 1-indexed row that was too long.
	Row int
	// Partial is the full-width content of the row that was read.
	Partial string
	// Char is the rune found where the row should have ended.
	Char rune
}

func (e *BadTerminationCharError) Error() string {
	return fmt.Sprintf("row %d %q followed by %q instead of a newline",
		e.Row, e.Partial, e.Char)
}

func (*BadTerminationCharError) parseError() {}

var (
	_ ParseError = &PrematureLineEndError{}
	_ ParseError = &BadTerminationCharError{}
)

// ParseGrid parses a picture into a grid. The width of the grid is the length
// of the first row, and each following row must have exactly that length. The
// final row may or may not be followed by a newline.
//
// The returned error, if any, is a ParseError.
func ParseGrid(s string) (*Grid, error) {
	rs := []rune(s)

	width := 0
	for width < len(rs) && rs[width] != RowSep {
		width++
	}

	cells := make([]rune, 0, len(rs))
	row := 0
	for i := 0; i < len(rs); {
		row++
		start := i
		for ; i-start < width; i++ {
			if i == len(rs) {
				return nil, &PrematureLineEndError{
					Row:           row,
					Partial:       string(rs[start:i]),
					ExpectedWidth: width,
				}
			}
		}
		cells = append(cells, rs[start:i]...)

		if i == len(rs) {
			break
		}
		if rs[i] != RowSep {
			return nil, &BadTerminationCharError{
				Row:     row,
				Partial: string(rs[start:i]),
				Char:    rs[i],
			}
		}
		i++
	}

	return &Grid{width: uint32(width), height: uint32(row), cells: cells}, nil
}
