package draw

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
)

// Cycler can switch between views.
type Cycler interface {
	Cycle()
}

// Show draws dr over the whole of screen, then shows the result.
func Show(screen tcell.Screen, dr DrawSetScoper) error {
	w, h := screen.Size()
	dr.SetScope(image.Rect(0, 0, w, h))

	err := dr.Draw(func(p image.Point, r rune, s tcell.Style) {
		screen.SetContent(p.X, p.Y, r, nil, s)
	})
	if err != nil {
		return fmt.Errorf("drawing failed: %w", err)
	}

	screen.Show()
	return nil
}

// Loop shows dr, redrawing after every event, until q, escape or ctrl-c is
// pressed. Tab cycles dr if it is a Cycler.
func Loop(screen tcell.Screen, dr DrawSetScoper) error {
	if err := Show(screen, dr); err != nil {
		return err
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// the screen was finalized
			return nil

		case *tcell.EventError:
			return fmt.Errorf("error event: %w", ev)

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlC, tcell.KeyEscape:
				return nil

			case tcell.KeyTab:
				if c, ok := dr.(Cycler); ok {
					c.Cycle()
				}

			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					return nil
				}
			}
		}

		if err := Show(screen, dr); err != nil {
			return err
		}
	}
}
