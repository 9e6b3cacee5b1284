package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dokkaebistudio/kanghwa-server/mocks"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()

	HandleHealthz()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Database up", func(t *testing.T) {
		pool := mocks.NewMockPool(t)
		pool.On("Ping", mock.Anything).Return(nil)

		req := httptest.NewRequest("GET", "/readyz", nil)
		rec := httptest.NewRecorder()

		HandleReadyz(pool)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Database down", func(t *testing.T) {
		pool := mocks.NewMockPool(t)
		pool.On("Ping", mock.Anything).Return(errors.New("connection refused"))

		req := httptest.NewRequest("GET", "/readyz", nil)
		rec := httptest.NewRecorder()

		HandleReadyz(pool)(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "unavailable")
	})
}
