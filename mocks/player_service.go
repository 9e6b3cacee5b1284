package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/player"
)

// MockPlayerService is a testify mock for player.Service.
type MockPlayerService struct {
	mock.Mock
}

func NewMockPlayerService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlayerService {
	m := &MockPlayerService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPlayerService) Register(ctx context.Context) (*player.RegisterResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*player.RegisterResult), args.Error(1)
}

func (m *MockPlayerService) GetProfile(ctx context.Context, playerID string) (*player.Profile, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*player.Profile), args.Error(1)
}

func (m *MockPlayerService) SetNickname(ctx context.Context, playerID, nickname string) (*domain.Player, error) {
	args := m.Called(ctx, playerID, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}
