package assemble

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverFiles recursively walks root and returns every ".asm" file found,
// sorted for deterministic build order (the reference relies on
// fs::read_dir's OS-given order, which Go does not guarantee — sorting
// keeps output reproducible across platforms).
func DiscoverFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".asm") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
