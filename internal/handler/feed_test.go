package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dokkaebistudio/kanghwa-server/internal/feed"
	"github.com/dokkaebistudio/kanghwa-server/mocks"
)

func TestHandleGetFeed(t *testing.T) {
	t.Run("Invalid limit", func(t *testing.T) {
		mockFeed := mocks.NewMockFeedService(t)
		h := NewFeedHandler(mockFeed)

		req := httptest.NewRequest("GET", "/feed?limit=zap", nil)
		rec := httptest.NewRecorder()

		h.HandleGetFeed(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Success", func(t *testing.T) {
		mockFeed := mocks.NewMockFeedService(t)
		mockFeed.On("RecentActivity", mock.Anything, feed.DefaultFeedLimit).Return([]feed.Entry{
			{ID: "log-1", Player: "강화왕", Message: "**강화왕**님이 [+7강 불꽃 칼] 강화에 성공했습니다! (+8강 달성)"},
		}, nil)
		h := NewFeedHandler(mockFeed)

		req := httptest.NewRequest("GET", "/feed", nil)
		rec := httptest.NewRecorder()

		h.HandleGetFeed(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "강화왕")
	})
}
