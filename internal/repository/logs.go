package repository

import (
	"context"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

// Logs defines the interface for reading the append-only audit tables.
type Logs interface {
	// RecentUpgradeLogs returns the newest upgrade/sell rows for the feed.
	RecentUpgradeLogs(ctx context.Context, limit int) ([]domain.UpgradeLog, error)

	// RecentBattleLogs returns the newest battle rows for one player.
	RecentBattleLogs(ctx context.Context, playerID string, limit int) ([]domain.BattleLog, error)
}
