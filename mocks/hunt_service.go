package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dokkaebistudio/kanghwa-server/internal/hunt"
)

// MockHuntService is a testify mock for hunt.Service.
type MockHuntService struct {
	mock.Mock
}

func NewMockHuntService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHuntService {
	m := &MockHuntService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHuntService) Start(ctx context.Context, playerID string) (*hunt.StartResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hunt.StartResult), args.Error(1)
}

func (m *MockHuntService) Resolve(ctx context.Context, playerID string) (*hunt.Result, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hunt.Result), args.Error(1)
}

func (m *MockHuntService) Abandon(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}
