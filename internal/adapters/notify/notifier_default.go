//go:build !darwin && !linux

package notify

// notify falls back to the terminal on unsupported platforms
func notify(title, body string) error {
	return terminalFallback(title, body)
}
