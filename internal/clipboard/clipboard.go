// Package clipboard wraps the system clipboard behind a small interface
// so UI code stays testable without a running window manager.
package clipboard

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Manager defines the interface for clipboard operations.
type Manager interface {
	SetContent(content string) error
}

// FyneManager implements Manager using Fyne's clipboard.
type FyneManager struct {
	clipboard fyne.Clipboard
}

// NewFyneManager creates a new FyneManager.
func NewFyneManager(clipboard fyne.Clipboard) *FyneManager {
	return &FyneManager{clipboard: clipboard}
}

// SetContent sets the clipboard content.
func (c *FyneManager) SetContent(content string) error {
	if c.clipboard == nil {
		return fmt.Errorf("clipboard is not available")
	}
	c.clipboard.SetContent(content)
	return nil
}
