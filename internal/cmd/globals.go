package cmd

import (
	"io"
	"log/slog"
	"os"
)

// Globals contains values that apply to multiple commands.
type Globals struct {
	// Dir is the directory containing picture and script files.
	Dir string `short:"d" default:"." type:"path" help:"Directory containing picture and script files."`
	// LogLevel is the minimum level of log records that are written.
	LogLevel slog.Level `default:"info" help:"Minimum level of log records to write, one of \"debug\",\"info\",\"warn\",\"error\"."`
	// LogFormat is the format log records are written in.
	LogFormat string `default:"text" enum:"text,json" help:"Format to write log records in."`

	// Stdin, Stdout and Stderr replace their os counterparts when set.
	Stdin  io.Reader `kong:"-"`
	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

// In returns the reader that command input should be read from.
func (g Globals) In() io.Reader {
	if g.Stdin == nil {
		return os.Stdin
	}
	return g.Stdin
}

// Out returns the writer that command output should be written to.
func (g Globals) Out() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// Logger returns a logger that writes to Stderr at LogLevel and in
// LogFormat.
func (g Globals) Logger() *slog.Logger {
	var w io.Writer = os.Stderr
	if g.Stderr != nil {
		w = g.Stderr
	}

	opts := &slog.HandlerOptions{Level: g.LogLevel}
	if g.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
