package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/logger"
	"github.com/dokkaebistudio/kanghwa-server/internal/repository"
	"github.com/dokkaebistudio/kanghwa-server/internal/utils"
)

// kst is the fixed game timezone; the daily boundary follows Korean days
// regardless of where the server runs.
var kst = time.FixedZone("KST", 9*60*60)

// Result is the outcome of one check-in. RewardGold is the base draw
// only; the streak bonus is reported separately so the two sum to the
// gold actually granted.
type Result struct {
	RewardGold int64         `json:"reward_gold"`
	BonusGold  int64         `json:"bonus_gold"`
	StreakDay  int           `json:"streak_day"`
	TodayGold  int64         `json:"today_gold"`
	Player     domain.Player `json:"player"`
}

// Service defines the interface for check-in operations
type Service interface {
	// CheckIn claims the periodic attendance reward.
	CheckIn(ctx context.Context, playerID string) (*Result, error)
}

type service struct {
	repo repository.Player

	randInt64 func(min, max int64) int64
	now       func() time.Time
}

// NewService creates a new checkin service
func NewService(repo repository.Player) Service {
	return &service{
		repo:      repo,
		randInt64: utils.RandomInt64,
		now:       time.Now,
	}
}

// CheckIn resolves one attendance claim. Claims are gated by a cooldown
// rather than one-per-day; the streak day advances on every claim and
// wraps back to 1 after day 7 or when a new KST day starts.
func (s *service) CheckIn(ctx context.Context, playerID string) (*Result, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if player.LastCheckinAt != nil && now.Sub(*player.LastCheckinAt) < domain.CheckinCooldown {
		return nil, domain.ErrCheckinCooldown
	}

	today := kstDate(now)
	newDay := player.TodayCheckinDate != today

	streak := player.CheckinStreakDay + 1
	if newDay || player.CheckinStreakDay >= domain.MaxCheckinStreak {
		streak = 1
	}

	base := s.randInt64(BaseRewardMin, BaseRewardMax)
	var bonus int64
	switch streak {
	case BonusStreakDayFive:
		bonus = BonusRewardDayFive
	case domain.MaxCheckinStreak:
		bonus = BonusRewardDaySeven
	}
	reward := base + bonus

	player.Gold += reward
	player.LastCheckinAt = &now
	player.CheckinStreakDay = streak
	if newDay {
		player.TodayCheckinGold = reward
		player.TodayCheckinDate = today
	} else {
		player.TodayCheckinGold += reward
	}

	logRow := domain.CheckinLog{
		PlayerID:   player.ID,
		RewardGold: reward,
		StreakDay:  streak,
	}

	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdatePlayer, err)
	}
	if err := tx.InsertCheckinLog(ctx, logRow); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToInsertLog, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	logger.FromContext(ctx).Info(LogMsgCheckinResolved, "player_id", playerID,
		"streak_day", streak, "reward_gold", reward, "bonus_gold", bonus)

	return &Result{
		RewardGold: base,
		BonusGold:  bonus,
		StreakDay:  streak,
		TodayGold:  player.TodayCheckinGold,
		Player:     *player,
	}, nil
}

// kstDate renders the KST calendar date a timestamp falls on.
func kstDate(t time.Time) string {
	return t.In(kst).Format("2006-01-02")
}
