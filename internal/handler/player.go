package handler

import (
	"net/http"

	"github.com/dokkaebistudio/kanghwa-server/internal/player"
)

type PlayerHandler struct {
	service player.Service
}

func NewPlayerHandler(service player.Service) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// HandleGetProfile returns the player state plus the rendered weapon info
// and the odds of the next upgrade attempt
func (h *PlayerHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Failed to get profile", err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

type SetNicknameRequest struct {
	Nickname string `json:"nickname" validate:"required"`
}

// HandleSetNickname sets or changes the player's public nickname
func (h *PlayerHandler) HandleSetNickname(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	var req SetNicknameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set nickname"); err != nil {
		return
	}

	updated, err := h.service.SetNickname(r.Context(), playerID, req.Nickname)
	if err != nil {
		respondServiceError(w, r, "Failed to set nickname", err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
