package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// UnknownClock is the sentinel rendered for a clock time that cannot be
// derived (missing timestamp, malformed input).
const UnknownClock = "--:--"

// LocalTimeView is a session instant re-expressed in an event's local zone.
// It is derived fresh on every call and never cached: the source records
// are immutable once fetched.
type LocalTimeView struct {
	DateTime  time.Time // instant in the event's fixed zone
	GMTOffset float64   // offset that was applied, echoed back
	LocalTime string    // zero-padded HH:mm in the event zone
	UTCTime   string    // zero-padded HH:mm in UTC
	Valid     bool      // false when the input timestamp was unusable
}

// ConvertTime converts a UTC epoch-seconds timestamp into an event's local
// time, given the event's GMT offset in decimal hours (fractional for
// quarter/half-hour zones, e.g. 5.5 or -3.75).
//
// The offset is decomposed as floor(offset) whole hours plus a rounded
// positive minute remainder. Summing both back into total seconds is exact
// for negative fractional offsets as well (-3.5 -> -4h + 30m = -03:30), so
// the zone label derived from the total is always correct.
//
// A non-positive timestamp yields the unknown-time sentinel instead of a
// degenerate formatted string. ConvertTime performs no I/O and never
// panics for finite inputs.
func ConvertTime(utcEpochSeconds int64, gmtOffsetHours float64) LocalTimeView {
	if utcEpochSeconds <= 0 || math.IsNaN(gmtOffsetHours) || math.IsInf(gmtOffsetHours, 0) {
		return LocalTimeView{
			GMTOffset: gmtOffsetHours,
			LocalTime: UnknownClock,
			UTCTime:   UnknownClock,
		}
	}

	hours := math.Floor(gmtOffsetHours)
	minutes := math.Round((gmtOffsetHours - hours) * 60)
	offsetSeconds := int(hours)*3600 + int(minutes)*60

	zone := time.FixedZone(zoneName(offsetSeconds), offsetSeconds)

	utc := time.Unix(utcEpochSeconds, 0).UTC()
	local := utc.In(zone)

	return LocalTimeView{
		DateTime:  local,
		GMTOffset: gmtOffsetHours,
		LocalTime: local.Format("15:04"),
		UTCTime:   utc.Format("15:04"),
		Valid:     true,
	}
}

// LocalDate returns the YYYY-MM-DD local date bucket, or "" for the
// unknown-time sentinel. Two sessions with the same bucket are "same day".
func (v LocalTimeView) LocalDate() string {
	if !v.Valid {
		return ""
	}
	return v.DateTime.Format("2006-01-02")
}

// EndTimeOfDay adds floor(durationSeconds/60) minutes to a HH:mm clock
// time, wrapping hours modulo 24. Midnight rollover is silently wrapped,
// not carried to the next date, so this is for display labels only; date
// bucketing must go through ConvertTime.
func EndTimeOfDay(localTimeHHmm string, durationSeconds int) string {
	h, m, ok := parseClock(localTimeHHmm)
	if !ok {
		return UnknownClock
	}

	total := h*60 + m + durationSeconds/60
	endH := (total / 60) % 24
	endM := total % 60
	if endH < 0 || endM < 0 {
		return UnknownClock
	}
	return fmt.Sprintf("%02d:%02d", endH, endM)
}

func parseClock(s string) (hours, minutes int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// zoneName formats total offset seconds as "UTC±HH:MM"
func zoneName(offsetSeconds int) string {
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offsetSeconds/3600, (offsetSeconds%3600)/60)
}
