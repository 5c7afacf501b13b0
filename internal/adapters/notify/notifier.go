package notify

import (
	"fmt"

	"wcamp/internal/ports"
)

// Notifier implements ports.Notifier
type Notifier struct{}

// Verify interface compliance at compile time
var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a desktop notifier
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Notify shows a desktop notification. Platform-specific implementations
// are in notifier_*.go files with build tags.
func (n *Notifier) Notify(title, body string) error {
	return notify(title, body)
}

// terminalFallback rings the bell and prints the reminder when no
// desktop notification mechanism is available
func terminalFallback(title, body string) error {
	fmt.Printf("\a%s: %s\n", title, body)
	return nil
}
