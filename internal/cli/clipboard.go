package cli

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
)

// Clipboard receives copied secrets.
type Clipboard interface {
	Copy(text string) error
}

type systemClipboard struct {
	clearAfter time.Duration
}

// NewSystemClipboard copies to the OS clipboard and clears it after
// clearAfter unless something else was copied meanwhile. The clear only
// happens while the process is alive.
func NewSystemClipboard(clearAfter time.Duration) Clipboard {
	return &systemClipboard{clearAfter: clearAfter}
}

func (c *systemClipboard) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	if c.clearAfter <= 0 {
		return nil
	}

	time.AfterFunc(c.clearAfter, func() {
		if current, err := clipboard.ReadAll(); err == nil && current == text {
			_ = clipboard.WriteAll("")
		}
	})
	return nil
}
