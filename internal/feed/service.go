package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/repository"
)

// Entry is one rendered line of the public activity feed.
type Entry struct {
	ID        string    `json:"id"`
	Player    string    `json:"player"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Service defines the interface for feed operations
type Service interface {
	// RecentActivity renders the newest upgrade and sell events.
	RecentActivity(ctx context.Context, limit int) ([]Entry, error)
}

type service struct {
	logs repository.Logs
}

// NewService creates a new feed service
func NewService(logs repository.Logs) Service {
	return &service{logs: logs}
}

func (s *service) RecentActivity(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}

	rows, err := s.logs.RecentUpgradeLogs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadLogs, err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		name := domain.AnonymousName
		if row.Nickname != nil && *row.Nickname != "" {
			name = *row.Nickname
		}
		entries = append(entries, Entry{
			ID:        row.ID,
			Player:    name,
			Message:   renderMessage(name, row),
			CreatedAt: row.CreatedAt,
		})
	}
	return entries, nil
}

// renderMessage builds the Korean feed line for one audit row. The weapon
// shown is the pre-mutation snapshot, so a destroyed weapon still appears
// with the level it died at.
func renderMessage(name string, row domain.UpgradeLog) string {
	weapon := fmt.Sprintf("+%d강 %s", row.FromLevel, row.WeaponName)

	if row.Action == domain.ActionSell {
		return fmt.Sprintf("**%s**님이 [%s]를 %d골드에 판매했습니다.", name, weapon, row.GoldChange)
	}

	if row.Result == nil {
		return fmt.Sprintf("**%s**님이 [%s] 강화를 시도했습니다.", name, weapon)
	}
	switch *row.Result {
	case domain.OutcomeSuccess:
		to := row.FromLevel + 1
		if row.ToLevel != nil {
			to = *row.ToLevel
		}
		return fmt.Sprintf("**%s**님이 [%s] 강화에 성공했습니다! (+%d강 달성)", name, weapon, to)
	case domain.OutcomeDestroy:
		return fmt.Sprintf("**%s**님의 [%s]가 강화에 실패해 파괴되었습니다...", name, weapon)
	default:
		return fmt.Sprintf("**%s**님이 [%s] 강화에 실패했지만 무기는 무사합니다.", name, weapon)
	}
}
