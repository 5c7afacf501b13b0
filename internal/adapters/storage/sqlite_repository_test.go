package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wcamp/internal/domain"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSelection_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.SelectedEvent(ctx)
	assert.ErrorIs(t, err, domain.ErrNoEventSelected)

	require.NoError(t, repo.SelectEvent(ctx, 42))
	id, err := repo.SelectedEvent(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	// Selecting again replaces, it never accumulates rows
	require.NoError(t, repo.SelectEvent(ctx, 77))
	id, err = repo.SelectedEvent(ctx)
	require.NoError(t, err)
	assert.Equal(t, 77, id)

	require.NoError(t, repo.ClearSelection(ctx))
	_, err = repo.SelectedEvent(ctx)
	assert.ErrorIs(t, err, domain.ErrNoEventSelected)
}

func TestContact_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Contact(ctx)
	assert.ErrorIs(t, err, domain.ErrNoContactCard)

	card := domain.ContactCard{
		FullName:   "Ada Lovelace",
		Email:      "ada@example.org",
		Company:    "Analytical Engines",
		WebsiteURL: "example.org",
		Phone:      "+44 20 1234",
	}
	require.NoError(t, repo.SaveContact(ctx, card))

	loaded, err := repo.Contact(ctx)
	require.NoError(t, err)
	assert.Equal(t, card, *loaded)

	// Saving again overwrites the singleton row
	card.Company = "Babbage & Co"
	require.NoError(t, repo.SaveContact(ctx, card))
	loaded, err = repo.Contact(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Babbage & Co", loaded.Company)

	require.NoError(t, repo.DeleteContact(ctx))
	_, err = repo.Contact(ctx)
	assert.ErrorIs(t, err, domain.ErrNoContactCard)
}

func TestScheduleEntries_AddRemoveClear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	remindAt := time.Now().UTC().Truncate(time.Second).Add(time.Hour)

	require.NoError(t, repo.AddEntry(ctx, domain.ScheduleEntry{
		EventID: 1, SessionID: 100, Title: "Keynote", StartLocal: "09:00",
		ReminderID: "r-1", RemindAt: remindAt,
	}))
	require.NoError(t, repo.AddEntry(ctx, domain.ScheduleEntry{
		EventID: 1, SessionID: 101,
	}))
	require.NoError(t, repo.AddEntry(ctx, domain.ScheduleEntry{
		EventID: 2, SessionID: 100,
	}))

	entries, err := repo.Entries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 100, entries[0].SessionID)
	assert.Equal(t, "Keynote", entries[0].Title)
	assert.Equal(t, "09:00", entries[0].StartLocal)
	assert.Equal(t, "r-1", entries[0].ReminderID)
	assert.True(t, entries[0].RemindAt.Equal(remindAt))
	assert.True(t, entries[1].RemindAt.IsZero())

	require.NoError(t, repo.RemoveEntry(ctx, 1, 100))
	entries, err = repo.Entries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Removing an absent entry is not an error
	require.NoError(t, repo.RemoveEntry(ctx, 1, 999))

	require.NoError(t, repo.ClearEntries(ctx, 1))
	entries, err = repo.Entries(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Other events are untouched
	entries, err = repo.Entries(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDueEntries_AndMarkNotified(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, repo.AddEntry(ctx, domain.ScheduleEntry{
		EventID: 1, SessionID: 100, RemindAt: now.Add(-time.Minute),
	}))
	require.NoError(t, repo.AddEntry(ctx, domain.ScheduleEntry{
		EventID: 1, SessionID: 101, RemindAt: now.Add(time.Hour),
	}))
	require.NoError(t, repo.AddEntry(ctx, domain.ScheduleEntry{
		EventID: 1, SessionID: 102, // no reminder configured
	}))

	due, err := repo.DueEntries(ctx, now.Unix())
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, 100, due[0].SessionID)

	require.NoError(t, repo.MarkNotified(ctx, 1, 100, now.Unix()))

	// Fired entries never come back as due
	due, err = repo.DueEntries(ctx, now.Unix())
	require.NoError(t, err)
	assert.Empty(t, due)

	entries, err := repo.Entries(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, entries[0].NotifiedAt)
	assert.Equal(t, now.Unix(), entries[0].NotifiedAt.Unix())
}

func TestAddEntry_UpsertReplacesReminder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AddEntry(ctx, domain.ScheduleEntry{
		EventID: 1, SessionID: 100, ReminderID: "old",
	}))
	require.NoError(t, repo.AddEntry(ctx, domain.ScheduleEntry{
		EventID: 1, SessionID: 100, ReminderID: "new",
	}))

	entries, err := repo.Entries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].ReminderID)
}
