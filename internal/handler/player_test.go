package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/player"
	"github.com/dokkaebistudio/kanghwa-server/mocks"
)

// authedRequest builds a request carrying an authenticated player ID,
// the way the session middleware would.
func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	return req.WithContext(WithPlayerID(req.Context(), "player-1"))
}

func TestHandleGetProfile(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		mockPlayers := mocks.NewMockPlayerService(t)
		h := NewPlayerHandler(mockPlayers)

		req := httptest.NewRequest("GET", "/player/profile", nil)
		rec := httptest.NewRecorder()

		h.HandleGetProfile(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Success", func(t *testing.T) {
		mockPlayers := mocks.NewMockPlayerService(t)
		mockPlayers.On("GetProfile", mock.Anything, "player-1").Return(&player.Profile{
			Player:          domain.Player{ID: "player-1"},
			WeaponName:      "불꽃 칼",
			NextUpgradeCost: 100,
			SuccessChance:   90,
		}, nil)
		h := NewPlayerHandler(mockPlayers)

		rec := httptest.NewRecorder()
		h.HandleGetProfile(rec, authedRequest("GET", "/player/profile", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "불꽃 칼")
	})
}

func TestHandleSetNickname(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*mocks.MockPlayerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			setupMocks:     func(mp *mocks.MockPlayerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing nickname",
			reqBody:        SetNicknameRequest{},
			setupMocks:     func(mp *mocks.MockPlayerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required",
		},
		{
			name:    "Nickname taken",
			reqBody: SetNicknameRequest{Nickname: "강화왕"},
			setupMocks: func(mp *mocks.MockPlayerService) {
				mp.On("SetNickname", mock.Anything, "player-1", "강화왕").Return(nil, domain.ErrNicknameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgNicknameTakenError,
		},
		{
			name:    "Success",
			reqBody: SetNicknameRequest{Nickname: "강화왕"},
			setupMocks: func(mp *mocks.MockPlayerService) {
				nick := "강화왕"
				mp.On("SetNickname", mock.Anything, "player-1", "강화왕").Return(&domain.Player{ID: "player-1", Nickname: &nick}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "강화왕",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPlayers := mocks.NewMockPlayerService(t)
			tt.setupMocks(mockPlayers)
			h := NewPlayerHandler(mockPlayers)

			var body []byte
			if s, ok := tt.reqBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			rec := httptest.NewRecorder()
			h.HandleSetNickname(rec, authedRequest("POST", "/player/nickname", body))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
