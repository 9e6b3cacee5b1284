package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dokkaebistudio/kanghwa-server/internal/checkin"
	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/mocks"
)

func TestHandleCheckIn(t *testing.T) {
	t.Run("On cooldown", func(t *testing.T) {
		mockCheckin := mocks.NewMockCheckinService(t)
		mockCheckin.On("CheckIn", mock.Anything, "player-1").Return(nil, domain.ErrCheckinCooldown)
		h := NewCheckinHandler(mockCheckin)

		rec := httptest.NewRecorder()
		h.HandleCheckIn(rec, authedRequest("POST", "/checkin", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgCheckinCooldownError)
	})

	t.Run("Success", func(t *testing.T) {
		mockCheckin := mocks.NewMockCheckinService(t)
		mockCheckin.On("CheckIn", mock.Anything, "player-1").Return(&checkin.Result{
			RewardGold: 50000,
			BonusGold:  300000,
			StreakDay:  5,
		}, nil)
		h := NewCheckinHandler(mockCheckin)

		rec := httptest.NewRecorder()
		h.HandleCheckIn(rec, authedRequest("POST", "/checkin", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"streak_day":5`)
	})
}
