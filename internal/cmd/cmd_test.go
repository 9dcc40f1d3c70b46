package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mtoohey.com/boxdraw/internal/testutil/assert"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
)

func TestLoadGlobalsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()
	defer xdg.Reload()

	args, err := LoadGlobalsConfig()
	assert.NoError(t, err)
	assert.Zero(t, args)

	path := filepath.Join(home, ConfigPath)
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NoError(t, os.WriteFile(path, []byte("--dir pics\n  --log-level debug\n"), 0o600))

	args, err = LoadGlobalsConfig()
	assert.NoError(t, err)
	assert.Equal(t, []string{"--dir", "pics", "--log-level", "debug"}, args)
}

type testCLI struct {
	Globals

	Fill rune `type:"glyph" default:"."`
}

func parse(t *testing.T, args ...string) (testCLI, error) {
	t.Helper()

	var cli testCLI
	parser, err := kong.New(&cli, append([]kong.Option{kong.Exit(func(int) { t.Fatal("unexpected exit") })}, TypeMappers...)...)
	if err != nil {
		t.Fatal(err)
	}

	_, err = parser.Parse(args)
	return cli, err
}

func TestTypeMappers(t *testing.T) {
	cli, err := parse(t)
	if assert.NoError(t, err) {
		assert.Equal(t, '.', cli.Fill)
		assert.Equal(t, slog.LevelInfo, cli.LogLevel)
		assert.Equal(t, "text", cli.LogFormat)
	}

	cli, err = parse(t, "--fill", "é", "--log-level", "warn", "--log-format", "json")
	if assert.NoError(t, err) {
		assert.Equal(t, 'é', cli.Fill)
		assert.Equal(t, slog.LevelWarn, cli.LogLevel)
		assert.Equal(t, "json", cli.LogFormat)
	}

	_, err = parse(t, "--fill", "ab")
	assert.True(t, err != nil && strings.Contains(err.Error(), "single character"))

	_, err = parse(t, "--log-level", "loud")
	assert.True(t, err != nil && strings.Contains(err.Error(), `"debug","info","warn","error"`))
}

func TestGlobals_Logger(t *testing.T) {
	var buf bytes.Buffer
	g := Globals{LogLevel: slog.LevelWarn, LogFormat: "json", Stderr: &buf}

	l := g.Logger()
	l.Info("hidden")
	l.Warn("shown", "n", 1)

	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.True(t, strings.Contains(buf.String(), `"msg":"shown"`))
}

func TestGlobals_Out(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, Globals{}.Out() == io.Writer(os.Stdout))
	assert.True(t, Globals{Stdout: &buf}.Out() == io.Writer(&buf))
}
