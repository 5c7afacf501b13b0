package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 2021-01-01 00:00:00 UTC
const fixedInstant = int64(1609459200)

func TestConvertTime_OffsetArithmetic(t *testing.T) {
	tests := []struct {
		name      string
		offset    float64
		localTime string
	}{
		{"utc", 0, "00:00"},
		{"india half hour", 5.5, "05:30"},
		{"negative quarter hour", -4.75, "19:15"},
		{"japan", 9, "09:00"},
		{"newfoundland negative half", -3.5, "20:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ConvertTime(fixedInstant, tt.offset)
			assert.True(t, view.Valid)
			assert.Equal(t, tt.localTime, view.LocalTime)
			assert.Equal(t, "00:00", view.UTCTime)
			assert.Equal(t, tt.offset, view.GMTOffset)
		})
	}
}

func TestConvertTime_NegativeOffsetShiftsDate(t *testing.T) {
	view := ConvertTime(fixedInstant, -4.75)
	assert.Equal(t, "2020-12-31", view.LocalDate())

	view = ConvertTime(fixedInstant, 5.5)
	assert.Equal(t, "2021-01-01", view.LocalDate())
}

func TestConvertTime_ZeroOffsetRoundTrip(t *testing.T) {
	view := ConvertTime(fixedInstant, 0)
	assert.Equal(t, view.LocalTime, view.UTCTime)
}

func TestConvertTime_InvalidTimestamp(t *testing.T) {
	for _, ts := range []int64{0, -1} {
		view := ConvertTime(ts, 2)
		assert.False(t, view.Valid)
		assert.Equal(t, UnknownClock, view.LocalTime)
		assert.Equal(t, UnknownClock, view.UTCTime)
		assert.Equal(t, "", view.LocalDate())
	}
}

func TestConvertTime_ReferentiallyTransparent(t *testing.T) {
	first := ConvertTime(fixedInstant, 5.5)
	second := ConvertTime(fixedInstant, 5.5)
	assert.Equal(t, first.LocalTime, second.LocalTime)
	assert.Equal(t, first.UTCTime, second.UTCTime)
	assert.True(t, first.DateTime.Equal(second.DateTime))
}

func TestEndTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		duration int
		expected string
	}{
		{"midnight rollover wraps", "23:50", 1200, "00:10"},
		{"plain addition", "10:00", 3600, "11:00"},
		{"sub-minute remainder dropped", "10:00", 90, "10:01"},
		{"zero duration", "09:15", 0, "09:15"},
		{"exact midnight", "23:00", 3600, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EndTimeOfDay(tt.start, tt.duration))
		})
	}
}

func TestEndTimeOfDay_MalformedInput(t *testing.T) {
	for _, input := range []string{"", "banana", "25:00", "10:75", "10", UnknownClock} {
		assert.Equal(t, UnknownClock, EndTimeOfDay(input, 600), "input %q", input)
	}
}
