package picture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mtoohey.com/boxdraw"
	"mtoohey.com/boxdraw/internal/cmd"

	"github.com/mattn/go-runewidth"
)

var header = [...]string{"picture", "size", "status"}

// Cmd reports whether each matching picture parses.
type Cmd struct {
	// Queries select the pictures to parse.
	Queries []string `arg:"" optional:"true" help:"Queries selecting the pictures to parse. Every picture is parsed when none are given."`
}

func (c *Cmd) Run(g cmd.Globals) error {
	paths, err := Find(g.Dir, c.Queries)
	if err != nil {
		return err
	}

	table := make([][len(header)]string, len(paths)+1)
	table[0] = header
	failed := 0
	for i, path := range paths {
		row := [len(header)]string{path, "-", "ok"}
		if rel, err := filepath.Rel(g.Dir, path); err == nil {
			row[0] = rel
		}

		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read picture: %w", err)
		}

		grid, err := boxdraw.ParseGrid(string(b))
		if err != nil {
			failed++
			row[2] = err.Error()
		} else {
			row[1] = fmt.Sprintf("%dx%d", grid.Width(), grid.Height())
		}

		table[i+1] = row
	}

	// maxWidths of each column
	var maxWidths [len(header)]int
	for col := 0; col < len(header); col++ {
		for row := 0; row < len(table); row++ {
			currLen := runewidth.StringWidth(table[row][col])
			if currLen > maxWidths[col] {
				maxWidths[col] = currLen
			}
		}
	}

	out := g.Out()
	for _, row := range table {
		// the last column isn't padded
		for col := 0; col < len(header)-1; col++ {
			row[col] = runewidth.FillRight(row[col], maxWidths[col])
		}
		if _, err := fmt.Fprintln(out, strings.Join(row[:], " ")); err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pictures failed to parse", failed, len(paths))
	}
	if len(paths) == 0 {
		return errors.New("no pictures found")
	}

	return nil
}
