package vfs

import (
	"strings"
)

// Tree renders the file system as an indented listing, directories suffixed
// with "/".
func Tree(fs *FileSystem) string {
	var sb strings.Builder
	root, ok := fs.Node(fs.Root)
	if !ok {
		return ""
	}

	sb.WriteString(root.Name + "/\n")
	writeTree(&sb, fs, root.Path, "")
	return sb.String()
}

func writeTree(sb *strings.Builder, fs *FileSystem, dir, indent string) {
	children := fs.Children(dir)
	for i, child := range children {
		branch, next := "├── ", "│   "
		if i == len(children)-1 {
			branch, next = "└── ", "    "
		}

		sb.WriteString(indent + branch + child.Name)
		if child.IsDirectory() {
			sb.WriteString("/\n")
			writeTree(sb, fs, child.Path, indent+next)
			continue
		}
		sb.WriteString("\n")
	}
}
