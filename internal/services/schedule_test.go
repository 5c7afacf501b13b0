package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wcamp/internal/domain"
	portsmocks "wcamp/internal/ports/mocks"
)

// keynoteStart is 2025-07-01T09:00:00Z, comfortably after testNow.
const keynoteStart int64 = 1751360400

func scheduleProgram() *Program {
	return &Program{
		Event:   &domain.Event{ID: 42},
		Details: &domain.EventDetails{GMTOffset: 2},
		Sessions: []domain.Session{
			{
				ID:    100,
				Title: domain.RenderedText{Rendered: "Keynote"},
				Meta:  domain.SessionMeta{StartTime: keynoteStart, Duration: 3600, Type: "session"},
			},
			{
				ID:    101,
				Title: domain.RenderedText{Rendered: "Lunch"},
				Meta:  domain.SessionMeta{StartTime: keynoteStart + 7200, Duration: 3600, Type: "custom"},
			},
		},
	}
}

func TestToggle_AddsWithReminder(t *testing.T) {
	repo := portsmocks.NewMockStateRepository(t)
	notifier := portsmocks.NewMockNotifier(t)
	clock := portsmocks.FixedClock{Instant: testNow}

	repo.On("Entries", mock.Anything, 42).Return([]domain.ScheduleEntry{}, nil)

	var saved domain.ScheduleEntry
	repo.On("AddEntry", mock.Anything, mock.AnythingOfType("domain.ScheduleEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.ScheduleEntry)
		}).
		Return(nil)

	svc := NewScheduleService(repo, notifier, clock, 0)

	added, err := svc.Toggle(context.Background(), scheduleProgram(), 100)

	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 42, saved.EventID)
	assert.Equal(t, 100, saved.SessionID)
	assert.Equal(t, "Keynote", saved.Title)
	assert.Equal(t, "11:00", saved.StartLocal)
	assert.NotEmpty(t, saved.ReminderID)
	// Default lead puts the reminder ten minutes before the UTC start
	assert.Equal(t, keynoteStart-600, saved.RemindAt.Unix())
}

func TestToggle_RemovesWhenAlreadyScheduled(t *testing.T) {
	repo := portsmocks.NewMockStateRepository(t)
	notifier := portsmocks.NewMockNotifier(t)

	repo.On("Entries", mock.Anything, 42).
		Return([]domain.ScheduleEntry{{EventID: 42, SessionID: 100}}, nil)
	repo.On("RemoveEntry", mock.Anything, 42, 100).Return(nil)

	svc := NewScheduleService(repo, notifier, portsmocks.FixedClock{Instant: testNow}, 0)

	added, err := svc.Toggle(context.Background(), scheduleProgram(), 100)

	require.NoError(t, err)
	assert.False(t, added)
}

func TestToggle_RejectsInertRows(t *testing.T) {
	repo := portsmocks.NewMockStateRepository(t)
	notifier := portsmocks.NewMockNotifier(t)

	svc := NewScheduleService(repo, notifier, portsmocks.FixedClock{Instant: testNow}, 0)

	_, err := svc.Toggle(context.Background(), scheduleProgram(), 101)

	assert.ErrorIs(t, err, domain.ErrNotSchedulable)
	repo.AssertNotCalled(t, "AddEntry", mock.Anything, mock.Anything)
}

func TestToggle_UnknownSession(t *testing.T) {
	repo := portsmocks.NewMockStateRepository(t)
	notifier := portsmocks.NewMockNotifier(t)

	svc := NewScheduleService(repo, notifier, portsmocks.FixedClock{Instant: testNow}, 0)

	_, err := svc.Toggle(context.Background(), scheduleProgram(), 999)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestToggle_NoReminderForImminentStart(t *testing.T) {
	repo := portsmocks.NewMockStateRepository(t)
	notifier := portsmocks.NewMockNotifier(t)
	// Five minutes before start, inside the ten-minute lead
	clock := portsmocks.FixedClock{Instant: time.Unix(keynoteStart-300, 0).UTC()}

	repo.On("Entries", mock.Anything, 42).Return([]domain.ScheduleEntry{}, nil)

	var saved domain.ScheduleEntry
	repo.On("AddEntry", mock.Anything, mock.AnythingOfType("domain.ScheduleEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.ScheduleEntry)
		}).
		Return(nil)

	svc := NewScheduleService(repo, notifier, clock, 0)

	added, err := svc.Toggle(context.Background(), scheduleProgram(), 100)

	require.NoError(t, err)
	assert.True(t, added)
	assert.Empty(t, saved.ReminderID)
	assert.True(t, saved.RemindAt.IsZero())
}

func TestScanDue_NotifiesAndMarks(t *testing.T) {
	repo := portsmocks.NewMockStateRepository(t)
	notifier := portsmocks.NewMockNotifier(t)
	clock := portsmocks.FixedClock{Instant: testNow}

	repo.On("DueEntries", mock.Anything, testNow.Unix()).
		Return([]domain.ScheduleEntry{
			{EventID: 42, SessionID: 100, Title: "Keynote", StartLocal: "11:00", RemindAt: testNow.Add(-time.Minute)},
		}, nil)
	notifier.On("Notify", "Session starting soon", "Keynote starts at 11:00").Return(nil)
	repo.On("MarkNotified", mock.Anything, 42, 100, testNow.Unix()).Return(nil)

	svc := NewScheduleService(repo, notifier, clock, 0)

	fired, err := svc.ScanDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestScanDue_FailedDeliveryStaysDue(t *testing.T) {
	repo := portsmocks.NewMockStateRepository(t)
	notifier := portsmocks.NewMockNotifier(t)
	clock := portsmocks.FixedClock{Instant: testNow}

	repo.On("DueEntries", mock.Anything, testNow.Unix()).
		Return([]domain.ScheduleEntry{
			{EventID: 42, SessionID: 100, Title: "Keynote", RemindAt: testNow.Add(-time.Minute)},
		}, nil)
	notifier.On("Notify", mock.Anything, mock.Anything).
		Return(assert.AnError)

	svc := NewScheduleService(repo, notifier, clock, 0)

	fired, err := svc.ScanDue(context.Background())

	require.NoError(t, err)
	assert.Zero(t, fired)
	repo.AssertNotCalled(t, "MarkNotified", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestScanDue_SkipsEntriesNoLongerDue(t *testing.T) {
	repo := portsmocks.NewMockStateRepository(t)
	notifier := portsmocks.NewMockNotifier(t)
	clock := portsmocks.FixedClock{Instant: testNow}

	notified := testNow.Add(-time.Minute)
	// The store may over-return; only entries still due fire
	repo.On("DueEntries", mock.Anything, testNow.Unix()).
		Return([]domain.ScheduleEntry{
			{EventID: 42, SessionID: 100, Title: "Keynote", StartLocal: "11:00", RemindAt: testNow.Add(-10 * time.Minute)},
			{EventID: 42, SessionID: 101, Title: "Closing", RemindAt: testNow.Add(-5 * time.Minute), NotifiedAt: &notified},
			{EventID: 42, SessionID: 102, Title: "Workshop"},
		}, nil)
	notifier.On("Notify", "Session starting soon", "Keynote starts at 11:00").Return(nil)
	repo.On("MarkNotified", mock.Anything, 42, 100, testNow.Unix()).Return(nil)

	svc := NewScheduleService(repo, notifier, clock, 0)

	fired, err := svc.ScanDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, fired)
	repo.AssertNotCalled(t, "MarkNotified", mock.Anything, 42, 101, mock.Anything)
	repo.AssertNotCalled(t, "MarkNotified", mock.Anything, 42, 102, mock.Anything)
}

func TestScanDue_NothingDue(t *testing.T) {
	repo := portsmocks.NewMockStateRepository(t)
	notifier := portsmocks.NewMockNotifier(t)

	repo.On("DueEntries", mock.Anything, testNow.Unix()).
		Return([]domain.ScheduleEntry{}, nil)

	svc := NewScheduleService(repo, notifier, portsmocks.FixedClock{Instant: testNow}, 0)

	fired, err := svc.ScanDue(context.Background())

	require.NoError(t, err)
	assert.Zero(t, fired)
}

func TestExportICS(t *testing.T) {
	repo := portsmocks.NewMockStateRepository(t)
	notifier := portsmocks.NewMockNotifier(t)

	repo.On("Entries", mock.Anything, 42).
		Return([]domain.ScheduleEntry{
			{EventID: 42, SessionID: 100, AddedAt: testNow},
			{EventID: 42, SessionID: 999}, // dropped out of the program
		}, nil)

	svc := NewScheduleService(repo, notifier, portsmocks.FixedClock{Instant: testNow}, 0)

	out, err := svc.ExportICS(context.Background(), scheduleProgram())

	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:Keynote")
	assert.Contains(t, out, "UID:wcamp-42-100")
	// The stale entry is skipped, not exported
	assert.NotContains(t, out, "wcamp-42-999")
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"))
}

func TestIsScheduled(t *testing.T) {
	repo := portsmocks.NewMockStateRepository(t)
	notifier := portsmocks.NewMockNotifier(t)

	repo.On("Entries", mock.Anything, 42).
		Return([]domain.ScheduleEntry{{EventID: 42, SessionID: 100}}, nil)

	svc := NewScheduleService(repo, notifier, portsmocks.FixedClock{Instant: testNow}, 0)

	ok, err := svc.IsScheduled(context.Background(), 42, 100)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsScheduled(context.Background(), 42, 101)
	require.NoError(t, err)
	assert.False(t, ok)
}
