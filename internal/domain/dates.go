package domain

import "time"

// Label helpers for rendering YYYY-MM-DD date buckets as tab headers.
// All of them return "" for a string that is not a date bucket.

// DayNumber returns the day-of-month ("15", "1").
func DayNumber(dateBucket string) string {
	t, ok := parseBucket(dateBucket)
	if !ok {
		return ""
	}
	return t.Format("2")
}

// DayName returns the abbreviated weekday name ("Mon").
func DayName(dateBucket string) string {
	t, ok := parseBucket(dateBucket)
	if !ok {
		return ""
	}
	return t.Format("Mon")
}

// MonthName returns the abbreviated month name ("Mar").
func MonthName(dateBucket string) string {
	t, ok := parseBucket(dateBucket)
	if !ok {
		return ""
	}
	return t.Format("Jan")
}

// LongDate returns a full label for section headers ("Monday, 15 January").
func LongDate(dateBucket string) string {
	t, ok := parseBucket(dateBucket)
	if !ok {
		return ""
	}
	return t.Format("Monday, 2 January")
}

func parseBucket(dateBucket string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", dateBucket)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
