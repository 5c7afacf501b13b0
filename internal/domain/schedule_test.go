package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleEntryDue(t *testing.T) {
	now := time.Unix(1751360400, 0).UTC()
	notified := now.Add(-time.Minute)

	tests := []struct {
		name  string
		entry ScheduleEntry
		want  bool
	}{
		{"past remind instant", ScheduleEntry{RemindAt: now.Add(-time.Minute)}, true},
		{"exactly at remind instant", ScheduleEntry{RemindAt: now}, true},
		{"future remind instant", ScheduleEntry{RemindAt: now.Add(time.Minute)}, false},
		{"already notified", ScheduleEntry{RemindAt: now.Add(-time.Minute), NotifiedAt: &notified}, false},
		{"no reminder set", ScheduleEntry{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Due(now))
		})
	}
}
