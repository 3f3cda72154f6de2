package ui

import (
	"fmt"
	"os/exec"
)

// OSAScriptNotifier shows native macOS dialogs via osascript and opens
// the output folder in Finder.
type OSAScriptNotifier struct{}

func (n *OSAScriptNotifier) Warn(title, message string) {
	n.dialog(title, message, "caution")
}

func (n *OSAScriptNotifier) Info(title, message string) {
	n.dialog(title, message, "note")
}

func (*OSAScriptNotifier) Reveal(path string) {
	_ = exec.Command("open", path).Run()
}

// AppleScript string literals use the same backslash escapes for quote
// and backslash as Go, so %q produces a valid literal.
func (*OSAScriptNotifier) dialog(title, message, icon string) {
	script := fmt.Sprintf(
		`display dialog %q with title %q buttons {"OK"} default button "OK" with icon %s`,
		message, title, icon)
	_ = exec.Command("osascript", "-e", script).Run()
}
