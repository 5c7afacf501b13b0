//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// notify shows a notification on macOS via osascript
func notify(title, body string) error {
	script := fmt.Sprintf("display notification %q with title %q",
		sanitize(body), sanitize(title))

	cmd := exec.Command("osascript", "-e", script)
	if err := cmd.Run(); err != nil {
		return terminalFallback(title, body)
	}
	return nil
}

// sanitize strips double quotes so the text cannot escape the
// AppleScript string literal
func sanitize(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
