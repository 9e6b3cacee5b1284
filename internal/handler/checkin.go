package handler

import (
	"net/http"

	"github.com/dokkaebistudio/kanghwa-server/internal/checkin"
	"github.com/dokkaebistudio/kanghwa-server/internal/metrics"
)

type CheckinHandler struct {
	service checkin.Service
}

func NewCheckinHandler(service checkin.Service) *CheckinHandler {
	return &CheckinHandler{service: service}
}

// HandleCheckIn claims the periodic attendance reward
func (h *CheckinHandler) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	result, err := h.service.CheckIn(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Failed to check in", err)
		return
	}

	metrics.CheckinsClaimed.Inc()

	respondJSON(w, http.StatusOK, result)
}
