package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPool is a testify mock for database.Pool.
type MockPool struct {
	mock.Mock
}

func NewMockPool(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPool {
	m := &MockPool{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPool) Close() {
	m.Called()
}
