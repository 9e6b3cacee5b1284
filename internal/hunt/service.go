package hunt

import (
	"context"
	"fmt"
	"time"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/gamedata"
	"github.com/dokkaebistudio/kanghwa-server/internal/logger"
	"github.com/dokkaebistudio/kanghwa-server/internal/repository"
	"github.com/dokkaebistudio/kanghwa-server/internal/utils"
)

// InProgressError rejects a start while the current hunt is still
// running. It unwraps to domain.ErrAlreadyHunting so handlers can match
// it; Remaining is the time left until the hunt can be resolved.
type InProgressError struct {
	Remaining time.Duration
}

func (e *InProgressError) Error() string {
	return fmt.Sprintf("%s: %s remaining", domain.ErrAlreadyHunting, e.Remaining)
}

func (e *InProgressError) Unwrap() error { return domain.ErrAlreadyHunting }

// StartResult reports a hunt that has just begun.
type StartResult struct {
	HuntingLevel int           `json:"hunting_level"`
	Duration     time.Duration `json:"duration"`
	StartedAt    time.Time     `json:"started_at"`
}

// Result is the reward of one resolved hunt.
type Result struct {
	RewardType      domain.HuntReward `json:"reward_type"`
	GoldEarned      int64             `json:"gold_earned,omitempty"`
	KeysHeld        int               `json:"keys_held"`
	LevelUp         bool              `json:"level_up"`
	NewHuntingLevel int               `json:"new_hunting_level"`
	Player          domain.Player     `json:"player"`
}

// Service defines the interface for hunting ground operations
type Service interface {
	// Start begins a hunt. A running hunt blocks the start until its
	// duration has elapsed; after that a new start forfeits the pending
	// reward and resets the timer.
	Start(ctx context.Context, playerID string) (*StartResult, error)

	// Resolve finishes a hunt once its duration has elapsed and rolls the
	// reward.
	Resolve(ctx context.Context, playerID string) (*Result, error)

	// Abandon cancels an in-flight hunt without a reward.
	Abandon(ctx context.Context, playerID string) error
}

type service struct {
	repo repository.Player

	rollPercent func() float64
	randInt64   func(min, max int64) int64
	now         func() time.Time
}

// NewService creates a new hunt service
func NewService(repo repository.Player) Service {
	return &service{
		repo:        repo,
		rollPercent: utils.RandomPercent,
		randInt64:   utils.RandomInt64,
		now:         time.Now,
	}
}

func (s *service) Start(ctx context.Context, playerID string) (*StartResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	startedAt := s.now()
	if player.IsHunting && player.HuntingStartedAt != nil {
		elapsed := startedAt.Sub(*player.HuntingStartedAt)
		if elapsed < domain.HuntDuration {
			return nil, &InProgressError{Remaining: domain.HuntDuration - elapsed}
		}
		// A finished but unresolved hunt forfeits its reward; starting
		// again just resets the timer.
	}

	player.IsHunting = true
	player.HuntingStartedAt = &startedAt

	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdatePlayer, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	logger.FromContext(ctx).Info(LogMsgHuntStarted, "player_id", playerID,
		"hunting_level", player.HuntingLevel)

	return &StartResult{
		HuntingLevel: player.HuntingLevel,
		Duration:     domain.HuntDuration,
		StartedAt:    startedAt,
	}, nil
}

func (s *service) Resolve(ctx context.Context, playerID string) (*Result, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !player.IsHunting || player.HuntingStartedAt == nil {
		return nil, domain.ErrNotHunting
	}
	if s.now().Sub(*player.HuntingStartedAt) < domain.HuntDuration {
		return nil, domain.ErrHuntNotDone
	}

	huntedLevel := player.HuntingLevel
	result := &Result{Player: *player}

	roll := s.rollPercent()
	goldChance := float64(gamedata.HuntGoldChance(huntedLevel))
	keyChance := float64(gamedata.HuntKeyChance(huntedLevel))

	var logRow domain.HuntingLog
	switch {
	case roll < goldChance:
		base := gamedata.HuntGoldBase(huntedLevel)
		amount := s.randInt64(base*(100-GoldSpreadPercent)/100, base*(100+GoldSpreadPercent)/100)
		player.Gold += amount
		result.RewardType = domain.HuntGold
		result.GoldEarned = amount
		logRow = domain.HuntingLog{RewardType: domain.HuntGold, RewardAmount: amount}

	case roll < goldChance+keyChance:
		player.HuntingKeys++
		result.RewardType = domain.HuntKey
		if player.HuntingKeys >= domain.KeysPerLevelUp && player.HuntingLevel < domain.MaxHuntingLevel {
			player.HuntingKeys = 0
			player.HuntingLevel++
			result.LevelUp = true
		}
		logRow = domain.HuntingLog{RewardType: domain.HuntKey, RewardAmount: 1}

	default:
		// The remainder of the roll is uniform over the protection band,
		// so it doubles as the drop-table roll.
		drop := gamedata.ResolveProtectionDrop(huntedLevel, roll-goldChance-keyChance)
		switch drop {
		case domain.HuntProtectionLow:
			player.ProtectionLow++
		case domain.HuntProtectionMid:
			player.ProtectionMid++
		case domain.HuntProtectionHigh:
			player.ProtectionHigh++
		}
		result.RewardType = drop
		logRow = domain.HuntingLog{RewardType: drop, RewardAmount: 1}
	}

	player.IsHunting = false
	player.HuntingStartedAt = nil

	logRow.PlayerID = player.ID
	logRow.HuntingLevel = huntedLevel

	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdatePlayer, err)
	}
	if err := tx.InsertHuntingLog(ctx, logRow); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToInsertLog, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	result.KeysHeld = player.HuntingKeys
	result.NewHuntingLevel = player.HuntingLevel
	result.Player = *player

	log.Info(LogMsgHuntResolved, "player_id", playerID, "hunting_level", huntedLevel,
		"reward_type", result.RewardType, "gold_earned", result.GoldEarned,
		"level_up", result.LevelUp)

	return result, nil
}

func (s *service) Abandon(ctx context.Context, playerID string) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return err
	}

	if !player.IsHunting {
		return domain.ErrNotHunting
	}

	player.IsHunting = false
	player.HuntingStartedAt = nil

	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpdatePlayer, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	logger.FromContext(ctx).Info(LogMsgHuntAbandoned, "player_id", playerID)
	return nil
}
