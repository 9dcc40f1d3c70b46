package peel

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"mtoohey.com/boxdraw"
	"mtoohey.com/boxdraw/internal/cmd"
	"mtoohey.com/boxdraw/internal/picture"
	"mtoohey.com/boxdraw/internal/scriptfile"

	"golang.org/x/sync/errgroup"
)

// Cmd undraws a picture, printing the resulting script file.
type Cmd struct {
	// Picture is a query selecting the picture to undraw.
	Picture string `arg:"" default:"-" help:"Query selecting the picture to undraw, or - to read it from stdin."`
	// Background is the background to assume instead of trying each glyph.
	Background *rune `short:"b" type:"glyph" help:"Background to assume instead of trying each glyph of the picture."`
}

func (c *Cmd) Run(g cmd.Globals) error {
	name, pic, err := picture.Read(g, c.Picture)
	if err != nil {
		return err
	}

	logger := g.Logger().With("picture", name)
	s, err := boxdraw.CheckUndraw(pic, Peeler{Logger: logger, Background: c.Background})
	if err != nil {
		var m *boxdraw.Mismatch
		if errors.As(err, &m) {
			logger.Error("undraw failed", "error", err)
			fmt.Fprint(g.Out(), m.Report())
		}
		return err
	}

	if _, err := g.Out().Write(scriptfile.Encode(s)); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	return nil
}

// CheckCmd checks that pictures survive undrawing and redrawing.
type CheckCmd struct {
	// Queries select the pictures to check.
	Queries []string `arg:"" optional:"true" help:"Queries selecting the pictures to check. Every picture is checked when none are given."`
	// Jobs is the maximum number of pictures checked at once.
	Jobs int `short:"j" default:"4" help:"Maximum number of pictures to check at once."`
	// Background is the background to assume instead of trying each glyph.
	Background *rune `short:"b" type:"glyph" help:"Background to assume instead of trying each glyph of each picture."`
}

type checkResult struct {
	script boxdraw.Script
	err    error
}

// check undraws the picture at path. Failing to read it is reported like a
// mismatch, so that one bad file doesn't hide the others.
func (c *CheckCmd) check(path string, logger *slog.Logger) checkResult {
	b, err := os.ReadFile(path)
	if err != nil {
		return checkResult{err: fmt.Errorf("failed to read picture: %w", err)}
	}

	var r checkResult
	p := Peeler{Logger: logger, Background: c.Background}
	r.script, r.err = boxdraw.CheckUndraw(string(b), p)
	return r
}

func (c *CheckCmd) Run(g cmd.Globals) error {
	paths, err := picture.Find(g.Dir, c.Queries)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no pictures found")
	}

	logger := g.Logger()
	results := make([]checkResult, len(paths))

	var eg errgroup.Group
	if c.Jobs > 0 {
		eg.SetLimit(c.Jobs)
	}
	for i, path := range paths {
		eg.Go(func() error {
			results[i] = c.check(path, logger.With("picture", path))
			return nil
		})
	}
	// results carry every failure, so there's nothing to return here
	_ = eg.Wait()

	out := g.Out()
	failed := 0
	for i, path := range paths {
		if rel, err := filepath.Rel(g.Dir, path); err == nil {
			path = rel
		}

		r := results[i]
		if r.err == nil {
			fmt.Fprintf(out, "ok   %s (%d rectangles)\n", path, r.script.Len())
			continue
		}

		failed++
		fmt.Fprintf(out, "FAIL %s: %v\n", path, r.err)
		var m *boxdraw.Mismatch
		if errors.As(r.err, &m) {
			fmt.Fprint(out, m.Report())
		}
	}

	logger.Info("checked pictures", "total", len(paths), "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d pictures failed to undraw", failed, len(paths))
	}

	return nil
}
