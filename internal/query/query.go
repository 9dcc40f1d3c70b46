package query

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// PictureExt is the extension of picture files found by Pictures.
const PictureExt = ".txt"

// Pictures returns the picture files within dir matching query. If query is
// the path of a regular file, either absolute or relative to dir, only that
// file is returned. Otherwise the picture files under dir, skipping hidden
// directories, are ranked by how closely their relative paths fuzzy match
// query. An empty query returns every picture, sorted by path.
func Pictures(dir, query string) ([]string, error) {
	if query != "" {
		path := query
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, query)
		}

		i, err := os.Stat(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		} else if i.Mode().IsRegular() {
			return []string{path}, nil
		}
	}

	var paths []string
	err := fs.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() && d.Name() != "." && d.Name()[0] == '.' {
			return fs.SkipDir
		}

		if d.Type().IsRegular() && filepath.Ext(path) == PictureExt {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if query == "" {
		sort.Strings(paths)
		for i, path := range paths {
			paths[i] = filepath.Join(dir, path)
		}
		return paths, nil
	}

	ranks := fuzzy.RankFindNormalizedFold(query, paths)
	sort.Sort(ranks)
	matches := make([]string, len(ranks))
	for i, rank := range ranks {
		matches[i] = filepath.Join(dir, rank.Target)
	}

	return matches, nil
}
