package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockNotifier mocks ports.Notifier.
type MockNotifier struct {
	mock.Mock
}

func NewMockNotifier(t testingT) *MockNotifier {
	m := &MockNotifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockNotifier) Notify(title, body string) error {
	return m.Called(title, body).Error(0)
}

// FixedClock is a ports.Clock that always returns the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }
