package boxdraw

import (
	"fmt"
	"math"
)

// Script draws a rectangle-based ASCII art picture.
type Script struct {
	// Width is the width of the generated picture.
	Width uint32
	// Height is the height of the generated picture.
	Height uint32
	// Background is the rune covering every cell no command draws to.
	Background rune

	commands []Command
}

// NewScript returns an empty script for a width x height picture with the
// default background.
func NewScript(width, height uint32) Script {
	return NewScriptCommands(width, height)
}

// NewScriptCommands returns a script for a width x height picture with the
// default background, drawing cmds in order.
func NewScriptCommands(width, height uint32, cmds ...Command) Script {
	return NewScriptBackgroundCommands(width, height, DefaultBackground, cmds...)
}

// NewScriptBackgroundCommands returns a script for a width x height picture
// with background bg, drawing cmds in order. It panics on the first command
// that doesn't fit within the picture.
func NewScriptBackgroundCommands(width, height uint32, bg rune, cmds ...Command) Script {
	s := Script{
		Width:      width,
		Height:     height,
		Background: bg,
	}
	for _, c := range cmds {
		s.mustValidate(c)
	}
	s.commands = append(make([]Command, 0, len(cmds)), cmds...)

	return s
}

// Validate returns an error if c doesn't fit entirely within the picture.
func (s *Script) Validate(c Command) error {
	if err := checkAxis("x", c.X, c.W, s.Width); err != nil {
		return fmt.Errorf("%v: %w", c, err)
	}
	if err := checkAxis("y", c.Y, c.H, s.Height); err != nil {
		return fmt.Errorf("%v: %w", c, err)
	}

	return nil
}

func (s *Script) mustValidate(c Command) {
	if err := s.Validate(c); err != nil {
		panic(fmt.Sprintf("boxdraw: invalid command %v", err))
	}
}

// Append adds c to the end of the script. It panics if c doesn't fit within
// the picture. Copies of s made before the call are unaffected.
func (s *Script) Append(c Command) {
	s.mustValidate(c)

	// copies share the backing array, so never write into spare capacity
	n := len(s.commands)
	s.commands = append(s.commands[:n:n], c)
}

// checkAxis verifies that pos..pos+length lies within 0..max along one axis.
func checkAxis(axis string, pos, length, max uint32) error {
	if length == 0 {
		return fmt.Errorf("zero length along %s", axis)
	}
	if pos > math.MaxUint32-length {
		return fmt.Errorf("%s %d + %d overflows", axis, pos, length)
	}
	if pos+length > max {
		return fmt.Errorf("%s %d + %d exceeds %d", axis, pos, length, max)
	}

	return nil
}

// Commands returns the command sequence of the script, in render order.
func (s Script) Commands() []Command {
	return append([]Command(nil), s.commands...)
}

// Len returns the number of commands in the script.
func (s Script) Len() int {
	return len(s.commands)
}

// Run evaluates the script, producing the picture.
func (s Script) Run() string {
	return s.Grid().String()
}

// Grid evaluates the script onto a fresh grid.
func (s Script) Grid() *Grid {
	g := NewGrid(s.Width, s.Height, s.Background)
	for _, c := range s.commands {
		g.Exec(c)
	}

	return g
}
