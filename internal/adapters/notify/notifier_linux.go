//go:build linux

package notify

import "os/exec"

// notify shows a notification on Linux via notify-send
func notify(title, body string) error {
	cmd := exec.Command("notify-send", "--app-name=wcamp", title, body)
	if err := cmd.Run(); err != nil {
		return terminalFallback(title, body)
	}
	return nil
}
