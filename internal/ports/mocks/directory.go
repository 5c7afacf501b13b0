// Package mocks provides testify mocks for the ports interfaces. They
// are handwritten but follow the generated-mock convention of a
// NewMockX(t) constructor that registers expectation assertions as a
// test cleanup.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wcamp/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockEventDirectory mocks ports.EventDirectory.
type MockEventDirectory struct {
	mock.Mock
}

func NewMockEventDirectory(t testingT) *MockEventDirectory {
	m := &MockEventDirectory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEventDirectory) ListScheduled(ctx context.Context) ([]domain.EventSummary, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.EventSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventDirectory) GetEvent(ctx context.Context, eventID int) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if v := args.Get(0); v != nil {
		return v.(*domain.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventDirectory) GetEventDetails(ctx context.Context, siteURL string) (*domain.EventDetails, error) {
	args := m.Called(ctx, siteURL)
	if v := args.Get(0); v != nil {
		return v.(*domain.EventDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventDirectory) GetMedia(ctx context.Context, mediaID int) (*domain.Media, error) {
	args := m.Called(ctx, mediaID)
	if v := args.Get(0); v != nil {
		return v.(*domain.Media), args.Error(1)
	}
	return nil, args.Error(1)
}
