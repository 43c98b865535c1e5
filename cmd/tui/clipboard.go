package tui

import (
	"github.com/atotto/clipboard"
)

// Clipboard copies to the system clipboard.
type Clipboard struct{}

func NewClipboard() *Clipboard {
	return &Clipboard{}
}

func (c *Clipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// IsAvailable reports whether a copy tool was found. atotto/clipboard has no
// check that leaves the clipboard untouched.
func (c *Clipboard) IsAvailable() bool {
	return !clipboard.Unsupported
}
