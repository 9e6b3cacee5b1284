package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dokkaebistudio/kanghwa-server/internal/shop"
)

// MockShopService is a testify mock for shop.Service.
type MockShopService struct {
	mock.Mock
}

func NewMockShopService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockShopService {
	m := &MockShopService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockShopService) Catalog(ctx context.Context, playerID string) ([]shop.CatalogEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.CatalogEntry), args.Error(1)
}

func (m *MockShopService) Claim(ctx context.Context, playerID, productID string) (*shop.ClaimResult, error) {
	args := m.Called(ctx, playerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.ClaimResult), args.Error(1)
}
