package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/upgrade"
)

// MockUpgradeService is a testify mock for upgrade.Service.
type MockUpgradeService struct {
	mock.Mock
}

func NewMockUpgradeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUpgradeService {
	m := &MockUpgradeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUpgradeService) AttemptUpgrade(ctx context.Context, playerID string, protection domain.ProtectionTier) (*upgrade.Result, error) {
	args := m.Called(ctx, playerID, protection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upgrade.Result), args.Error(1)
}

func (m *MockUpgradeService) SellWeapon(ctx context.Context, playerID string) (*upgrade.SellResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upgrade.SellResult), args.Error(1)
}
