package scriptfile

import (
	"fmt"
	"io"

	"mtoohey.com/boxdraw/internal/cmd"
)

// Cmd renders a script file.
type Cmd struct {
	// Script is the path of the script file to render.
	Script string `arg:"" type:"path" help:"Path of the script file to render."`
}

func (c *Cmd) Run(g cmd.Globals) error {
	s, err := LoadFile(c.Script)
	if err != nil {
		return err
	}

	g.Logger().Debug("loaded script", "path", c.Script, "commands", s.Len())

	if _, err := io.WriteString(g.Out(), s.Run()); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	return nil
}
