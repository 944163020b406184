package tui

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when no clipboard utility is available
// (e.g. no xclip/xsel/wl-copy on Linux).
var ErrClipboardUnsupported = errors.New("system clipboard unsupported")

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements explorer.Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
