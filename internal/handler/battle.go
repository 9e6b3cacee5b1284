package handler

import (
	"net/http"
	"strconv"

	"github.com/dokkaebistudio/kanghwa-server/internal/battle"
	"github.com/dokkaebistudio/kanghwa-server/internal/metrics"
)

type BattleHandler struct {
	service battle.Service
}

func NewBattleHandler(service battle.Service) *BattleHandler {
	return &BattleHandler{service: service}
}

// HandleExecuteBattle spends one ticket on a fight against a random opponent
// @Summary Fight a random opponent
// @Description Spends one battle ticket and resolves an async fight against another player's stored state
// @Tags battle
// @Produce json
// @Success 200 {object} battle.Result
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/battle [post]
func (h *BattleHandler) HandleExecuteBattle(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Execute(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Failed to execute battle", err)
		return
	}

	metrics.BattlesFought.WithLabelValues(string(result.Outcome)).Inc()

	respondJSON(w, http.StatusOK, result)
}

// HandleGetTickets reports the ticket balance after lazy regeneration
func (h *BattleHandler) HandleGetTickets(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	info, err := h.service.Tickets(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Failed to get tickets", err)
		return
	}

	respondJSON(w, http.StatusOK, info)
}

// HandleGetRankings returns the leaderboard and the caller's own rank
func (h *BattleHandler) HandleGetRankings(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	limitStr := GetOptionalQueryParam(r, "limit", strconv.Itoa(battle.DefaultRankingLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
		return
	}

	result, err := h.service.Rankings(r.Context(), playerID, limit)
	if err != nil {
		respondServiceError(w, r, "Failed to get rankings", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
