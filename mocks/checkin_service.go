package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dokkaebistudio/kanghwa-server/internal/checkin"
)

// MockCheckinService is a testify mock for checkin.Service.
type MockCheckinService struct {
	mock.Mock
}

func NewMockCheckinService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCheckinService {
	m := &MockCheckinService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCheckinService) CheckIn(ctx context.Context, playerID string) (*checkin.Result, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkin.Result), args.Error(1)
}
