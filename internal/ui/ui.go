// Package ui covers the platform notification surfaces: the
// validation-failure and completion alerts and the reveal-output action.
// The core pipeline never consumes a return value from any of these.
package ui

import (
	"fmt"
	"os"
	"runtime"
)

// Notifier surfaces run outcomes to the user.
type Notifier interface {
	// Warn reports a failure (validation rejection).
	Warn(title, message string)
	// Info reports the completion summary.
	Info(title, message string)
	// Reveal shows the output location.
	Reveal(path string)
}

// ForPlatform picks the native notifier where one exists, the terminal
// notifier elsewhere.
func ForPlatform() Notifier {
	if runtime.GOOS == "darwin" {
		return &OSAScriptNotifier{}
	}
	return &TerminalNotifier{}
}

// TerminalNotifier writes notifications to the standard streams.
type TerminalNotifier struct{}

func (*TerminalNotifier) Warn(title, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
}

func (*TerminalNotifier) Info(title, message string) {
	fmt.Printf("%s: %s\n", title, message)
}

func (*TerminalNotifier) Reveal(path string) {
	fmt.Printf("Output written to %s\n", path)
}
