package domain

import "time"

// The program index: pure derivations over an immutable session slice and
// one GMT offset. Every function tolerates a nil or empty slice and
// returns an empty result instead of an error; callers memoize on
// (sessions, offset) or (sessions, now) since inputs are snapshots.

// UniqueDates returns the distinct local date buckets of the sessions, in
// first-seen order (not sorted). Sessions with an unusable timestamp are
// skipped.
func UniqueDates(sessions []Session, gmtOffset float64) []string {
	dates := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)

	for _, s := range sessions {
		view := ConvertTime(s.Meta.StartTime, gmtOffset)
		if !view.Valid {
			continue
		}
		date := view.LocalDate()
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		dates = append(dates, date)
	}

	return dates
}

// SessionsByDate returns the sessions whose local date bucket equals date,
// preserving input order. An unknown date yields an empty slice.
func SessionsByDate(sessions []Session, gmtOffset float64, date string) []Session {
	matched := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		view := ConvertTime(s.Meta.StartTime, gmtOffset)
		if view.Valid && view.LocalDate() == date {
			matched = append(matched, s)
		}
	}
	return matched
}

// SessionsBySpeaker returns the sessions featuring the given speaker.
// Stored speaker IDs are strings; they are coerced to numbers before the
// equality check so "42" matches 42. Non-numeric IDs never match.
func SessionsBySpeaker(sessions []Session, speakerID int) []Session {
	matched := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		for _, sp := range s.Speakers {
			if id, ok := sp.SpeakerID(); ok && id == speakerID {
				matched = append(matched, s)
				break
			}
		}
	}
	return matched
}

// SessionsByCategory returns the sessions whose category set contains
// categoryID.
func SessionsByCategory(sessions []Session, categoryID int) []Session {
	matched := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		for _, c := range s.Categories {
			if c == categoryID {
				matched = append(matched, s)
				break
			}
		}
	}
	return matched
}

// CurrentSessions returns the sessions whose closed interval
// [start, start+duration] contains now. The caller owns the refresh
// cadence; this is a pure function of (sessions, gmtOffset, now).
func CurrentSessions(sessions []Session, gmtOffset float64, now time.Time) []Session {
	matched := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		view := ConvertTime(s.Meta.StartTime, gmtOffset)
		if !view.Valid {
			continue
		}

		start := view.DateTime
		end := start.Add(time.Duration(s.Meta.Duration) * time.Second)

		if !now.Before(start) && !now.After(end) {
			matched = append(matched, s)
		}
	}
	return matched
}
