// Command boxdraw renders, parses, undraws and views ASCII box pictures.
package main

import (
	"fmt"
	"io"
	"os"

	"mtoohey.com/boxdraw/internal/cmd"
	"mtoohey.com/boxdraw/internal/peel"
	"mtoohey.com/boxdraw/internal/picture"
	"mtoohey.com/boxdraw/internal/scriptfile"
	"mtoohey.com/boxdraw/internal/tui"

	"github.com/alecthomas/kong"
)

type cli struct {
	cmd.Globals

	Render scriptfile.Cmd `cmd:"" help:"Render a script file."`
	Parse  picture.Cmd    `cmd:"" help:"Report whether pictures parse."`
	Undraw peel.Cmd       `cmd:"" help:"Undraw a picture into a script file."`
	Check  peel.CheckCmd  `cmd:"" help:"Check that pictures are reproduced by undrawing then rendering them."`
	View   tui.Cmd        `cmd:"" help:"Show a picture in the terminal."`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var c cli
	options := append([]kong.Option{
		kong.Name("boxdraw"),
		kong.Description("Render, parse, undraw and view ASCII box pictures."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	}, cmd.TypeMappers...)

	parser, err := kong.New(&c, options...)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	c.Stdin, c.Stdout, c.Stderr = stdin, stdout, stderr
	return ctx.Run(c.Globals)
}

func main() {
	cfgArgs, err := cmd.LoadGlobalsConfig()
	if err == nil {
		err = run(append(cfgArgs, os.Args[1:]...), os.Stdin, os.Stdout, os.Stderr)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "boxdraw: %v\n", err)
		os.Exit(1)
	}
}
