package peel

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mtoohey.com/boxdraw"
	"mtoohey.com/boxdraw/internal/cmd"
	"mtoohey.com/boxdraw/internal/scriptfile"
	"mtoohey.com/boxdraw/internal/testutil/assert"
)

const overlapping = "" +
	"+-+..\n" +
	"|b|..\n" +
	"|+-+.\n" +
	"+|c|.\n" +
	".+-+.\n"

func TestCmd_Run(t *testing.T) {
	var out, logs strings.Builder
	g := cmd.Globals{Stdin: strings.NewReader(overlapping), Stdout: &out, Stderr: &logs}

	assert.NoError(t, (&Cmd{Picture: "-"}).Run(g))

	s, err := scriptfile.Load("out.hcl", []byte(out.String()))
	if assert.NoError(t, err) {
		assert.Equal(t, overlapping, s.Run())
	}

	out.Reset()
	g.Stdin = strings.NewReader("ab\nc")
	err = (&Cmd{Picture: "-"}).Run(g)
	assert.True(t, errors.Is(err, boxdraw.ErrMismatch))
	assert.True(t, strings.HasPrefix(out.String(), "goal  produced\n"))
	assert.True(t, strings.Contains(logs.String(), "undraw failed"))
}

func TestCheckCmd_Run(t *testing.T) {
	dir := t.TempDir()
	for name, contents := range map[string]string{
		"a/overlapping.txt": overlapping,
		"b/line.txt":        ".aaa.\n",
		"c/column.txt":      "x.\nx.\n",
	} {
		path := filepath.Join(dir, name)
		assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		assert.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	}

	var out, logs strings.Builder
	g := cmd.Globals{Dir: dir, Stdout: &out, Stderr: &logs}

	assert.NoError(t, (&CheckCmd{Jobs: 2}).Run(g))
	assert.Equal(t, ""+
		"ok   "+filepath.Join("a", "overlapping.txt")+" (2 rectangles)\n"+
		"ok   "+filepath.Join("b", "line.txt")+" (1 rectangles)\n"+
		"ok   "+filepath.Join("c", "column.txt")+" (1 rectangles)\n", out.String())
	assert.True(t, strings.Contains(logs.String(), "checked pictures"))

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "broken.txt"), []byte("ab\nc"), 0o600))
	out.Reset()
	err := (&CheckCmd{Queries: []string{"broken", "line"}}).Run(g)
	assert.True(t, err != nil && strings.Contains(err.Error(), "1 of 2"))
	assert.True(t, strings.HasPrefix(out.String(), "FAIL broken.txt: "))
	assert.True(t, strings.Contains(out.String(), "ok   "+filepath.Join("b", "line.txt")))

	err = (&CheckCmd{Queries: []string{"zzz"}}).Run(g)
	assert.True(t, err != nil && strings.Contains(err.Error(), "no pictures"))
}

func TestCheckCmd_check(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := &CheckCmd{}

	r := c.check(filepath.Join(t.TempDir(), "missing.txt"), logger)
	assert.True(t, r.err != nil && strings.Contains(r.err.Error(), "failed to read picture"))

	path := filepath.Join(t.TempDir(), "line.txt")
	assert.NoError(t, os.WriteFile(path, []byte(".aa.\n"), 0o600))
	r = c.check(path, logger)
	assert.NoError(t, r.err)
	assert.Equal(t, 1, r.script.Len())
}
