package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dokkaebistudio/kanghwa-server/internal/feed"
)

// MockFeedService is a testify mock for feed.Service.
type MockFeedService struct {
	mock.Mock
}

func NewMockFeedService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFeedService {
	m := &MockFeedService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFeedService) RecentActivity(ctx context.Context, limit int) ([]feed.Entry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feed.Entry), args.Error(1)
}
