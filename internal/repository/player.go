package repository

import (
	"context"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByNickname(ctx context.Context, nickname string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player domain.Player) error

	// ListOpponents returns up to limit other players for matchmaking.
	ListOpponents(ctx context.Context, excludePlayerID string, limit int) ([]domain.Player, error)

	// Rankings returns players ordered by weapon level, then win count.
	Rankings(ctx context.Context, limit int) ([]domain.Player, error)

	// Rank returns a player's 1-based position under the same ordering.
	Rank(ctx context.Context, playerID string) (int, error)

	BeginTx(ctx context.Context) (PlayerTx, error)
}

// PlayerTx defines the interface for player transactions. Every
// reward-resolving operation locks the player row, applies one state
// transition and appends its audit log inside the same transaction.
type PlayerTx interface {
	Tx

	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player domain.Player) error

	InsertUpgradeLog(ctx context.Context, log domain.UpgradeLog) error
	InsertBattleLog(ctx context.Context, log domain.BattleLog) error
	InsertCheckinLog(ctx context.Context, log domain.CheckinLog) error
	InsertHuntingLog(ctx context.Context, log domain.HuntingLog) error
}
