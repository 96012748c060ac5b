// Package termio contains small terminal I/O helpers for the interactive
// commit flow.
package termio

import (
	"os"
	"time"

	"golang.org/x/term"
)

// ClearStdinBuffer discards any pending input from stdin so keystrokes
// typed while the model call was in flight do not answer the confirmation
// prompt.
func ClearStdinBuffer() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}

	clearStdinBufferPlatform()

	// Small delay to let any pending operations complete.
	time.Sleep(10 * time.Millisecond)

	drainRemainingInput()
}
