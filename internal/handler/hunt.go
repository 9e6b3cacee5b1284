package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dokkaebistudio/kanghwa-server/internal/hunt"
	"github.com/dokkaebistudio/kanghwa-server/internal/metrics"
)

type HuntHandler struct {
	service hunt.Service
}

// HuntInProgressResponse is the rejection payload when a hunt is still
// running, carrying how long until it can be resolved.
type HuntInProgressResponse struct {
	Error            string `json:"error"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

func NewHuntHandler(service hunt.Service) *HuntHandler {
	return &HuntHandler{service: service}
}

// HandleStartHunt begins a hunt on the player's current hunting ground
func (h *HuntHandler) HandleStartHunt(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Start(r.Context(), playerID)
	if err != nil {
		var inProgress *hunt.InProgressError
		if errors.As(err, &inProgress) {
			remaining := int((inProgress.Remaining + time.Second - 1) / time.Second)
			respondJSON(w, http.StatusConflict, HuntInProgressResponse{
				Error:            ErrMsgAlreadyHuntingError,
				RemainingSeconds: remaining,
			})
			return
		}
		respondServiceError(w, r, "Failed to start hunt", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleResolveHunt finishes a hunt and rolls the reward
func (h *HuntHandler) HandleResolveHunt(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Resolve(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Failed to resolve hunt", err)
		return
	}

	metrics.HuntsResolved.WithLabelValues(string(result.RewardType)).Inc()

	respondJSON(w, http.StatusOK, result)
}

// HandleAbandonHunt cancels an in-flight hunt without a reward
func (h *HuntHandler) HandleAbandonHunt(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	if err := h.service.Abandon(r.Context(), playerID); err != nil {
		respondServiceError(w, r, "Failed to abandon hunt", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Hunt abandoned"})
}
