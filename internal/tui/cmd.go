// Package tui shows pictures in the terminal.
package tui

import (
	"errors"
	"fmt"

	"mtoohey.com/boxdraw"
	"mtoohey.com/boxdraw/internal/cmd"
	"mtoohey.com/boxdraw/internal/draw"
	"mtoohey.com/boxdraw/internal/peel"
	"mtoohey.com/boxdraw/internal/picture"

	"github.com/gdamore/tcell/v2"
)

// newScreen creates the screen that Cmd draws to.
var newScreen = tcell.NewScreen

// Cmd shows a picture until it is dismissed.
type Cmd struct {
	// Picture is a query selecting the picture to show.
	Picture string `arg:"" default:"-" help:"Query selecting the picture to show, or - to read it from stdin."`
	// Check enables showing how the picture differs from its undrawn script.
	Check bool `short:"c" help:"Undraw the picture, showing the differences side by side if the script doesn't reproduce it."`
}

func (c *Cmd) drawer(g cmd.Globals) (draw.DrawSetScoper, error) {
	name, pic, err := picture.Read(g, c.Picture)
	if err != nil {
		return nil, err
	}

	if c.Check {
		_, err := boxdraw.CheckUndraw(pic, peel.Peeler{Logger: g.Logger().With("picture", name)})
		var m *boxdraw.Mismatch
		if errors.As(err, &m) {
			return draw.NewMismatchDrawer(m), nil
		}
	}

	return draw.NewPictureDrawer(name, pic), nil
}

func (c *Cmd) Run(g cmd.Globals) error {
	// undraw before the screen takes over the terminal so logs stay readable
	dr, err := c.drawer(g)
	if err != nil {
		return err
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	return draw.Loop(screen, dr)
}
