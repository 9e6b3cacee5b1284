package handler

import (
	"net/http"
	"strconv"

	"github.com/dokkaebistudio/kanghwa-server/internal/feed"
)

type FeedHandler struct {
	service feed.Service
}

func NewFeedHandler(service feed.Service) *FeedHandler {
	return &FeedHandler{service: service}
}

// HandleGetFeed returns the public activity feed
func (h *FeedHandler) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	limitStr := GetOptionalQueryParam(r, "limit", strconv.Itoa(feed.DefaultFeedLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
		return
	}

	entries, err := h.service.RecentActivity(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "Failed to get activity feed", err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
