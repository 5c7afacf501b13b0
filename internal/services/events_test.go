package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wcamp/internal/domain"
	portsmocks "wcamp/internal/ports/mocks"
)

// testNow is a fixed instant all window math in these tests hangs off:
// 2025-06-15T12:00:00Z.
var testNow = time.Unix(1749988800, 0).UTC()

func summary(id int, start, end time.Time) domain.EventSummary {
	return domain.EventSummary{
		ID:        id,
		URL:       "https://example.wordcamp.org/2025",
		StartDate: strconv.FormatInt(start.Unix(), 10),
		EndDate:   strconv.FormatInt(end.Unix(), 10),
	}
}

func TestUpcoming_WindowAndOrder(t *testing.T) {
	directory := portsmocks.NewMockEventDirectory(t)
	repo := portsmocks.NewMockStateRepository(t)

	tooOld := summary(1, testNow.AddDate(0, 0, -10), testNow.AddDate(0, 0, -9))
	running := summary(2, testNow.AddDate(0, 0, -2), testNow.AddDate(0, 0, 1))
	soon := summary(3, testNow.AddDate(0, 0, 5), testNow.AddDate(0, 0, 6))
	tooFar := summary(4, testNow.AddDate(0, 0, 20), testNow.AddDate(0, 2, 0))

	// Returned out of order so the sort is observable
	directory.On("ListScheduled", mock.Anything).
		Return([]domain.EventSummary{soon, tooFar, running, tooOld}, nil)

	svc := NewEventService(directory, repo, portsmocks.FixedClock{Instant: testNow})

	events, err := svc.Upcoming(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 2, events[0].ID)
	assert.Equal(t, 3, events[1].ID)
}

func TestUpcoming_SkipsUnparseableDates(t *testing.T) {
	directory := portsmocks.NewMockEventDirectory(t)
	repo := portsmocks.NewMockStateRepository(t)

	broken := domain.EventSummary{ID: 9, URL: "https://x.wordcamp.org", StartDate: "soon", EndDate: "later"}
	good := summary(10, testNow.AddDate(0, 0, 1), testNow.AddDate(0, 0, 2))

	directory.On("ListScheduled", mock.Anything).
		Return([]domain.EventSummary{broken, good}, nil)

	svc := NewEventService(directory, repo, portsmocks.FixedClock{Instant: testNow})

	events, err := svc.Upcoming(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 10, events[0].ID)
}

func TestUpcoming_DirectoryError(t *testing.T) {
	directory := portsmocks.NewMockEventDirectory(t)
	repo := portsmocks.NewMockStateRepository(t)

	directory.On("ListScheduled", mock.Anything).
		Return(nil, errors.New("central is down"))

	svc := NewEventService(directory, repo, portsmocks.FixedClock{Instant: testNow})

	_, err := svc.Upcoming(context.Background())
	require.Error(t, err)
}

func TestSelect_PersistsAfterLookup(t *testing.T) {
	directory := portsmocks.NewMockEventDirectory(t)
	repo := portsmocks.NewMockStateRepository(t)

	directory.On("GetEvent", mock.Anything, 42).
		Return(&domain.Event{ID: 42, URL: "https://x.wordcamp.org/2025/"}, nil)
	repo.On("SelectEvent", mock.Anything, 42).Return(nil)

	svc := NewEventService(directory, repo, portsmocks.FixedClock{Instant: testNow})

	event, err := svc.Select(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, 42, event.ID)
}

func TestSelect_UnknownEventIsNotPersisted(t *testing.T) {
	directory := portsmocks.NewMockEventDirectory(t)
	repo := portsmocks.NewMockStateRepository(t)

	directory.On("GetEvent", mock.Anything, 999).
		Return(nil, domain.ErrEventNotFound)

	svc := NewEventService(directory, repo, portsmocks.FixedClock{Instant: testNow})

	_, err := svc.Select(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	repo.AssertNotCalled(t, "SelectEvent", mock.Anything, mock.Anything)
}

func TestSelected_ResolvesPersistedID(t *testing.T) {
	directory := portsmocks.NewMockEventDirectory(t)
	repo := portsmocks.NewMockStateRepository(t)

	repo.On("SelectedEvent", mock.Anything).Return(42, nil)
	directory.On("GetEvent", mock.Anything, 42).
		Return(&domain.Event{ID: 42}, nil)

	svc := NewEventService(directory, repo, portsmocks.FixedClock{Instant: testNow})

	event, err := svc.Selected(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, event.ID)
}

func TestSelected_NoSelection(t *testing.T) {
	directory := portsmocks.NewMockEventDirectory(t)
	repo := portsmocks.NewMockStateRepository(t)

	repo.On("SelectedEvent", mock.Anything).Return(0, domain.ErrNoEventSelected)

	svc := NewEventService(directory, repo, portsmocks.FixedClock{Instant: testNow})

	_, err := svc.Selected(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoEventSelected)
}

func TestClearSelection(t *testing.T) {
	directory := portsmocks.NewMockEventDirectory(t)
	repo := portsmocks.NewMockStateRepository(t)

	repo.On("ClearSelection", mock.Anything).Return(nil)

	svc := NewEventService(directory, repo, portsmocks.FixedClock{Instant: testNow})

	require.NoError(t, svc.ClearSelection(context.Background()))
}

func TestArtwork(t *testing.T) {
	directory := portsmocks.NewMockEventDirectory(t)
	repo := portsmocks.NewMockStateRepository(t)

	directory.On("GetMedia", mock.Anything, 12).Return(&domain.Media{ID: 12}, nil)

	svc := NewEventService(directory, repo, portsmocks.FixedClock{Instant: testNow})

	media, err := svc.Artwork(context.Background(), &domain.Event{ID: 42, FeaturedMedia: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, media.ID)

	// No featured media, nothing to fetch
	media, err = svc.Artwork(context.Background(), &domain.Event{ID: 43})
	require.NoError(t, err)
	assert.Nil(t, media)
}
