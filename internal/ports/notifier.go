package ports

// Notifier delivers reminder notifications to the user's desktop.
type Notifier interface {
	// Notify shows a notification with a title and body
	Notify(title, body string) error
}
