package shop

import (
	"context"
	"fmt"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/logger"
	"github.com/dokkaebistudio/kanghwa-server/internal/repository"
)

// CatalogEntry is a product plus the player's claim state.
type CatalogEntry struct {
	Product
	Purchased bool `json:"purchased"`
}

// ClaimResult is the outcome of claiming a product.
type ClaimResult struct {
	Product Product       `json:"product"`
	Player  domain.Player `json:"player"`
}

// Service defines the interface for shop operations
type Service interface {
	// Catalog lists all products with the player's claim flags.
	Catalog(ctx context.Context, playerID string) ([]CatalogEntry, error)

	// Claim grants a one-time product to the player.
	Claim(ctx context.Context, playerID, productID string) (*ClaimResult, error)
}

type service struct {
	repo repository.Player
}

// NewService creates a new shop service
func NewService(repo repository.Player) Service {
	return &service{repo: repo}
}

func (s *service) Catalog(ctx context.Context, playerID string) ([]CatalogEntry, error) {
	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	entries := make([]CatalogEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, CatalogEntry{Product: p, Purchased: purchased(player, p.ID)})
	}
	return entries, nil
}

func (s *service) Claim(ctx context.Context, playerID, productID string) (*ClaimResult, error) {
	product, ok := productByID(productID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if purchased(player, productID) {
		return nil, domain.ErrAlreadyPurchased
	}

	player.Gold += product.Gold
	switch product.Protection {
	case domain.ProtectionLow:
		player.ProtectionLow += product.Count
	case domain.ProtectionMid:
		player.ProtectionMid += product.Count
	case domain.ProtectionHigh:
		player.ProtectionHigh += product.Count
	}
	markPurchased(player, productID)

	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdatePlayer, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	logger.FromContext(ctx).Info(LogMsgProductClaimed, "player_id", playerID, "product_id", productID)

	return &ClaimResult{Product: product, Player: *player}, nil
}
