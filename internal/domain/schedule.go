package domain

import "time"

// ScheduleEntry is one session the user picked into their personal
// schedule for an event. The entry carries enough denormalized session
// data (title, local start) for the reminder daemon to notify without
// refetching the program.
type ScheduleEntry struct {
	EventID    int
	SessionID  int
	Title      string
	StartLocal string // HH:mm in the event's zone, display only
	ReminderID string // handle of the pending reminder, empty when fired or disabled
	RemindAt   time.Time
	NotifiedAt *time.Time
	AddedAt    time.Time
}

// Due reports whether the entry's reminder should fire at now: the remind
// instant has passed and no notification was delivered yet.
func (e ScheduleEntry) Due(now time.Time) bool {
	if e.NotifiedAt != nil || e.RemindAt.IsZero() {
		return false
	}
	return !now.Before(e.RemindAt)
}
