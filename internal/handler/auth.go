package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/metrics"
	"github.com/dokkaebistudio/kanghwa-server/internal/player"
	"github.com/dokkaebistudio/kanghwa-server/internal/session"
)

type AuthHandler struct {
	players  player.Service
	sessions session.Service
}

func NewAuthHandler(players player.Service, sessions session.Service) *AuthHandler {
	return &AuthHandler{
		players:  players,
		sessions: sessions,
	}
}

// RegisterResponse is the payload for a fresh account
type RegisterResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Player    domain.Player `json:"player"`
}

// HandleRegister creates a new anonymous player and a session for it
// @Summary Register a new player
// @Description Creates an anonymous player with starting resources and returns a bearer token
// @Tags auth
// @Produce json
// @Success 201 {object} RegisterResponse
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	result, err := h.players.Register(r.Context())
	if err != nil {
		respondServiceError(w, r, "Failed to register player", err)
		return
	}

	metrics.PlayersRegistered.Inc()

	respondJSON(w, http.StatusCreated, RegisterResponse{
		Token:     result.Session.Token,
		ExpiresAt: result.Session.ExpiresAt,
		Player:    result.Player,
	})
}

// HandleLogout revokes the bearer token used for the request
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, ErrMsgMissingBearerToken)
		return
	}

	if err := h.sessions.Revoke(r.Context(), token); err != nil {
		respondServiceError(w, r, "Failed to revoke session", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedOutSuccess})
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

// requirePlayerID pulls the authenticated player ID out of the request
// context. The auth middleware guarantees it for protected routes; a miss
// means the route was mounted outside the protected group.
func requirePlayerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	playerID, ok := PlayerIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedError)
		return "", false
	}
	return playerID, true
}
