// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// FindFilesByExtension searches path for files matching any of the given
// extensions (e.g. ".hcl", ".json"). A file path is returned as-is when it
// matches; a directory is walked recursively. Results are sorted and
// deduplicated so load order is stable across platforms.
func FindFilesByExtension(path string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("fsutil: at least one extension required")
	}

	wanted := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		wanted[ext] = struct{}{}
	}

	seen := make(map[string]struct{})
	var files []string
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := wanted[filepath.Ext(p)]; !ok {
			return nil
		}
		if _, dup := seen[p]; dup {
			return nil
		}
		seen[p] = struct{}{}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
