package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dokkaebistudio/kanghwa-server/internal/battle"
)

// MockBattleService is a testify mock for battle.Service.
type MockBattleService struct {
	mock.Mock
}

func NewMockBattleService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBattleService {
	m := &MockBattleService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBattleService) Execute(ctx context.Context, playerID string) (*battle.Result, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*battle.Result), args.Error(1)
}

func (m *MockBattleService) Tickets(ctx context.Context, playerID string) (*battle.TicketInfo, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*battle.TicketInfo), args.Error(1)
}

func (m *MockBattleService) Rankings(ctx context.Context, playerID string, limit int) (*battle.RankingsResult, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*battle.RankingsResult), args.Error(1)
}
