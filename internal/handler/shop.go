package handler

import (
	"net/http"

	"github.com/dokkaebistudio/kanghwa-server/internal/metrics"
	"github.com/dokkaebistudio/kanghwa-server/internal/shop"
)

type ShopHandler struct {
	service shop.Service
}

func NewShopHandler(service shop.Service) *ShopHandler {
	return &ShopHandler{service: service}
}

// HandleGetCatalog lists the products with the player's claim flags
func (h *ShopHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	entries, err := h.service.Catalog(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Failed to get catalog", err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

type ClaimProductRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// HandleClaimProduct grants a one-time product to the player
func (h *ShopHandler) HandleClaimProduct(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayerID(w, r)
	if !ok {
		return
	}

	var req ClaimProductRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim product"); err != nil {
		return
	}

	result, err := h.service.Claim(r.Context(), playerID, req.ProductID)
	if err != nil {
		respondServiceError(w, r, "Failed to claim product", err)
		return
	}

	metrics.ProductsClaimed.WithLabelValues(result.Product.ID).Inc()

	respondJSON(w, http.StatusOK, result)
}
