// Package picture locates and reads picture files.
package picture

import (
	"fmt"
	"io"
	"os"

	"mtoohey.com/boxdraw/internal/cmd"
	"mtoohey.com/boxdraw/internal/query"
)

// Stdin is the query that reads the picture from standard input.
const Stdin = "-"

// Find returns the pictures within dir matching any of queries, in the order
// the queries are given, without duplicates. No queries matches every
// picture.
func Find(dir string, queries []string) ([]string, error) {
	if len(queries) == 0 {
		return query.Pictures(dir, "")
	}

	seen := map[string]bool{}
	paths := []string{}
	for _, q := range queries {
		matches, err := query.Pictures(dir, q)
		if err != nil {
			return nil, fmt.Errorf("query %q failed: %w", q, err)
		}

		for _, path := range matches {
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
		}
	}

	return paths, nil
}

// Read returns the name and contents of the picture best matching q within
// g.Dir. If q is Stdin, the picture is read from g.In() instead.
func Read(g cmd.Globals, q string) (name, picture string, err error) {
	if q == Stdin {
		b, err := io.ReadAll(g.In())
		if err != nil {
			return "", "", fmt.Errorf("failed to read picture from stdin: %w", err)
		}
		return "stdin", string(b), nil
	}

	paths, err := query.Pictures(g.Dir, q)
	if err != nil {
		return "", "", fmt.Errorf("query %q failed: %w", q, err)
	}
	if len(paths) == 0 {
		return "", "", fmt.Errorf("no picture matches %q", q)
	}

	b, err := os.ReadFile(paths[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read picture: %w", err)
	}

	return paths[0], string(b), nil
}
