package ports

import "time"

// Clock supplies the "now" instant consumed by current-session queries and
// the reminder scan. The query functions never poll; whoever drives them
// owns the cadence and injects a Clock so tests run without timers.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }
