package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wcamp/internal/domain"
)

// MockStateRepository mocks ports.StateRepository and thereby also its
// embedded SelectionStore, ContactStore and ScheduleStore interfaces.
type MockStateRepository struct {
	mock.Mock
}

func NewMockStateRepository(t testingT) *MockStateRepository {
	m := &MockStateRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockStateRepository) SelectedEvent(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStateRepository) SelectEvent(ctx context.Context, eventID int) error {
	return m.Called(ctx, eventID).Error(0)
}

func (m *MockStateRepository) ClearSelection(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockStateRepository) Contact(ctx context.Context) (*domain.ContactCard, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.ContactCard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStateRepository) SaveContact(ctx context.Context, card domain.ContactCard) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockStateRepository) DeleteContact(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockStateRepository) Entries(ctx context.Context, eventID int) ([]domain.ScheduleEntry, error) {
	args := m.Called(ctx, eventID)
	if v := args.Get(0); v != nil {
		return v.([]domain.ScheduleEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStateRepository) AddEntry(ctx context.Context, entry domain.ScheduleEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockStateRepository) RemoveEntry(ctx context.Context, eventID, sessionID int) error {
	return m.Called(ctx, eventID, sessionID).Error(0)
}

func (m *MockStateRepository) ClearEntries(ctx context.Context, eventID int) error {
	return m.Called(ctx, eventID).Error(0)
}

func (m *MockStateRepository) DueEntries(ctx context.Context, now int64) ([]domain.ScheduleEntry, error) {
	args := m.Called(ctx, now)
	if v := args.Get(0); v != nil {
		return v.([]domain.ScheduleEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStateRepository) MarkNotified(ctx context.Context, eventID, sessionID int, at int64) error {
	return m.Called(ctx, eventID, sessionID, at).Error(0)
}

func (m *MockStateRepository) Close() error {
	return m.Called().Error(0)
}
