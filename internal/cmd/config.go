package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// ConfigPath is the location of the globals config file, relative to the
// XDG config directory.
var ConfigPath = filepath.Join("boxdraw", "globals.conf")

// LoadGlobalsConfig returns the whitespace separated arguments held by the
// globals config file, which should be placed before those from the command
// line. A missing file holds no arguments.
func LoadGlobalsConfig() ([]string, error) {
	path, err := xdg.ConfigFile(ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve globals config path: %w", err)
	}

	return readArgs(path)
}

func readArgs(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// return no error when the file doesn't exist
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read globals config file: %w", err)
	}

	return strings.Fields(string(b)), nil
}
