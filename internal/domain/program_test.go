package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSession(id int, start int64, duration int) Session {
	return Session{
		ID:    id,
		Title: RenderedText{Rendered: "Talk"},
		Meta: SessionMeta{
			StartTime: start,
			Duration:  duration,
			Type:      SessionTypeSession,
		},
	}
}

func TestUniqueDates_FirstSeenOrder(t *testing.T) {
	dayOne := int64(1735722000)  // 2025-01-01 09:00 UTC
	dayTwo := dayOne + 86400

	sessions := []Session{
		makeSession(1, dayTwo, 3600),
		makeSession(2, dayOne, 3600),
		makeSession(3, dayTwo+3600, 3600),
	}

	dates := UniqueDates(sessions, 0)
	require.Len(t, dates, 2)
	assert.Equal(t, []string{"2025-01-02", "2025-01-01"}, dates)

	// Permuting input changes order but never count or membership
	permuted := []Session{sessions[1], sessions[2], sessions[0]}
	dates = UniqueDates(permuted, 0)
	assert.Equal(t, []string{"2025-01-01", "2025-01-02"}, dates)
}

func TestUniqueDates_EmptyAndInvalid(t *testing.T) {
	assert.Empty(t, UniqueDates(nil, 2))
	assert.Empty(t, UniqueDates([]Session{}, 2))

	// Sessions with unusable timestamps contribute no bucket
	assert.Empty(t, UniqueDates([]Session{makeSession(1, 0, 3600)}, 2))
}

func TestUniqueDates_OffsetMovesBucket(t *testing.T) {
	// 2025-01-01 23:00 UTC is already Jan 2 at UTC+2
	late := int64(1735772400)
	dates := UniqueDates([]Session{makeSession(1, late, 3600)}, 2)
	require.Len(t, dates, 1)
	assert.Equal(t, "2025-01-02", dates[0])
}

func TestSessionsByDate(t *testing.T) {
	dayOne := int64(1735722000)
	sessions := []Session{
		makeSession(1, dayOne, 3600),
		makeSession(2, dayOne+86400, 3600),
		makeSession(3, dayOne+7200, 3600),
	}

	matched := SessionsByDate(sessions, 0, "2025-01-01")
	require.Len(t, matched, 2)
	// Relative input order preserved
	assert.Equal(t, 1, matched[0].ID)
	assert.Equal(t, 3, matched[1].ID)

	assert.Empty(t, SessionsByDate(sessions, 0, "1999-01-01"))
	assert.Empty(t, SessionsByDate(nil, 0, "2025-01-01"))
}

func TestSessionsByDate_Idempotent(t *testing.T) {
	sessions := []Session{makeSession(1, 1735722000, 3600)}
	first := SessionsByDate(sessions, 0, "2025-01-01")
	second := SessionsByDate(sessions, 0, "2025-01-01")
	assert.Equal(t, first, second)
}

func TestSessionsBySpeaker_NumericCoercion(t *testing.T) {
	sessions := []Session{
		{ID: 1, Speakers: []SessionSpeaker{{ID: "7", Name: "Ada"}}},
		{ID: 2, Speakers: []SessionSpeaker{{ID: "12"}}},
		{ID: 3, Speakers: []SessionSpeaker{{ID: "not-a-number"}, {ID: "7"}}},
	}

	matched := SessionsBySpeaker(sessions, 7)
	require.Len(t, matched, 2)
	assert.Equal(t, 1, matched[0].ID)
	assert.Equal(t, 3, matched[1].ID)

	assert.Empty(t, SessionsBySpeaker(sessions, 99))
	assert.Empty(t, SessionsBySpeaker(nil, 7))
}

func TestSessionsByCategory(t *testing.T) {
	sessions := []Session{
		{ID: 1, Categories: []int{4, 9}},
		{ID: 2, Categories: []int{9}},
		{ID: 3},
	}

	matched := SessionsByCategory(sessions, 9)
	require.Len(t, matched, 2)

	assert.Empty(t, SessionsByCategory(sessions, 1))
	assert.Empty(t, SessionsByCategory(nil, 9))
}

func TestCurrentSessions_ClosedInterval(t *testing.T) {
	now := time.Unix(1735722000, 0).UTC()

	started10mAgo := makeSession(1, now.Unix()-600, 1800)  // ends in 20m
	started40mAgo := makeSession(2, now.Unix()-2400, 1800) // ended 10m ago
	startsLater := makeSession(3, now.Unix()+600, 1800)
	endsExactlyNow := makeSession(4, now.Unix()-1800, 1800)
	startsExactlyNow := makeSession(5, now.Unix(), 1800)

	sessions := []Session{started10mAgo, started40mAgo, startsLater, endsExactlyNow, startsExactlyNow}

	matched := CurrentSessions(sessions, 0, now)
	require.Len(t, matched, 3)
	assert.Equal(t, 1, matched[0].ID)
	assert.Equal(t, 4, matched[1].ID) // closed interval includes the end instant
	assert.Equal(t, 5, matched[2].ID) // and the start instant
}

func TestCurrentSessions_OffsetAgnostic(t *testing.T) {
	// The interval is an instant range; re-expressing it in another zone
	// must not change membership.
	now := time.Unix(1735722000, 0).UTC()
	sessions := []Session{makeSession(1, now.Unix()-600, 1800)}

	for _, offset := range []float64{0, 5.5, -4.75, 9} {
		matched := CurrentSessions(sessions, offset, now)
		assert.Len(t, matched, 1, "offset %v", offset)
	}
}

func TestCurrentSessions_Empty(t *testing.T) {
	assert.Empty(t, CurrentSessions(nil, 0, time.Now()))
}
