package vfs

import (
	"path"
	"strings"
)

// AbsolutePath resolves rel against cwd. Absolute paths are only cleaned; an
// empty rel resolves to cwd. The result may not exist.
func AbsolutePath(fs *FileSystem, cwd, rel string) string {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return cwd
	}
	if strings.HasPrefix(rel, "/") {
		return path.Clean(rel)
	}

	root := "/"
	if fs != nil && fs.Root != "" {
		root = fs.Root
	}
	return path.Join(root, cwd, rel)
}
