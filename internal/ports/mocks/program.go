package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wcamp/internal/domain"
)

// MockProgramSource mocks ports.ProgramSource.
type MockProgramSource struct {
	mock.Mock
}

func NewMockProgramSource(t testingT) *MockProgramSource {
	m := &MockProgramSource{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProgramSource) Sessions(ctx context.Context, siteURL string) ([]domain.Session, error) {
	args := m.Called(ctx, siteURL)
	if v := args.Get(0); v != nil {
		return v.([]domain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgramSource) Speakers(ctx context.Context, siteURL string) ([]domain.Speaker, error) {
	args := m.Called(ctx, siteURL)
	if v := args.Get(0); v != nil {
		return v.([]domain.Speaker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgramSource) Speaker(ctx context.Context, siteURL string, speakerID int) (*domain.Speaker, error) {
	args := m.Called(ctx, siteURL, speakerID)
	if v := args.Get(0); v != nil {
		return v.(*domain.Speaker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgramSource) Sponsors(ctx context.Context, siteURL string) ([]domain.Sponsor, error) {
	args := m.Called(ctx, siteURL)
	if v := args.Get(0); v != nil {
		return v.([]domain.Sponsor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgramSource) Sponsor(ctx context.Context, siteURL string, sponsorID int) (*domain.Sponsor, error) {
	args := m.Called(ctx, siteURL, sponsorID)
	if v := args.Get(0); v != nil {
		return v.(*domain.Sponsor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgramSource) Tracks(ctx context.Context, siteURL string) ([]domain.Track, error) {
	args := m.Called(ctx, siteURL)
	if v := args.Get(0); v != nil {
		return v.([]domain.Track), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgramSource) Categories(ctx context.Context, siteURL string) ([]domain.Category, error) {
	args := m.Called(ctx, siteURL)
	if v := args.Get(0); v != nil {
		return v.([]domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgramSource) Media(ctx context.Context, siteURL string, mediaID int) (*domain.Media, error) {
	args := m.Called(ctx, siteURL, mediaID)
	if v := args.Get(0); v != nil {
		return v.(*domain.Media), args.Error(1)
	}
	return nil, args.Error(1)
}
