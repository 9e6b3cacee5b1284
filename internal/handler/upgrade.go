package handler

import (
	"net/http"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/metrics"
	"github.com/dokkaebistudio/kanghwa-server/internal/upgrade"
)

type UpgradeHandler struct {
	service upgrade.Service
}

func NewUpgradeHandler(service upgrade.Service) *UpgradeHandler {
	return &UpgradeHandler{service: service}
}

type AttemptUpgradeRequest struct {
	Protection string `json:"protection,omitempty" validate:"omitempty,protection_tier"`
}

// HandleAttemptUpgrade runs one upgrade roll on the equipped weapon
// @Summary Attempt a weapon upgrade
// @Description Spends gold on one upgrade roll, optionally shielded by a protection token
// @Tags upgrade
// @Accept json
// @Produce json
// @Success 200 {object} upgrade.Result
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/upgrade [post]
func (h *UpgradeHandler) HandleAttemptUpgrade(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	var req AttemptUpgradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Attempt upgrade"); err != nil {
		return
	}

	result, err := h.service.AttemptUpgrade(r.Context(), playerID, domain.ProtectionTier(req.Protection))
	if err != nil {
		respondServiceError(w, r, "Failed to attempt upgrade", err)
		return
	}

	metrics.UpgradeAttempts.WithLabelValues(string(result.Outcome)).Inc()

	respondJSON(w, http.StatusOK, result)
}

// HandleSellWeapon trades the equipped weapon for gold
func (h *UpgradeHandler) HandleSellWeapon(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	result, err := h.service.SellWeapon(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Failed to sell weapon", err)
		return
	}

	metrics.WeaponsSold.Inc()

	respondJSON(w, http.StatusOK, result)
}
