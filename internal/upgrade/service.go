package upgrade

import (
	"context"
	"fmt"
	"math"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/gamedata"
	"github.com/dokkaebistudio/kanghwa-server/internal/logger"
	"github.com/dokkaebistudio/kanghwa-server/internal/repository"
	"github.com/dokkaebistudio/kanghwa-server/internal/utils"
	"github.com/dokkaebistudio/kanghwa-server/internal/weaponinfo"
)

// Result is the outcome of one upgrade attempt.
type Result struct {
	Outcome        domain.UpgradeOutcome `json:"outcome"`
	FromLevel      int                   `json:"from_level"`
	ToLevel        int                   `json:"to_level"`
	GoldSpent      int64                 `json:"gold_spent"`
	UsedProtection domain.ProtectionTier `json:"used_protection,omitempty"`
	Destroyed      bool                  `json:"destroyed"`
	WeaponName     string                `json:"weapon_name"`
	Player         domain.Player         `json:"player"`
}

// SellResult is the outcome of selling the current weapon.
type SellResult struct {
	SoldLevel  int           `json:"sold_level"`
	Payout     int64         `json:"payout"`
	WeaponName string        `json:"weapon_name"`
	Player     domain.Player `json:"player"`
}

// Service defines the interface for upgrade operations
type Service interface {
	// AttemptUpgrade runs one paid upgrade roll, optionally shielded by a
	// protection token of the given tier.
	AttemptUpgrade(ctx context.Context, playerID string, protection domain.ProtectionTier) (*Result, error)

	// SellWeapon trades the current weapon for gold and hands out a fresh
	// random +0 weapon.
	SellWeapon(ctx context.Context, playerID string) (*SellResult, error)
}

type service struct {
	repo       repository.Player
	weaponInfo weaponinfo.Service

	// Injectable randomness for deterministic tests.
	rollPercent func() float64
	randInt     func(min, max int) int
	randFloat   func() float64
}

// NewService creates a new upgrade service
func NewService(repo repository.Player, weaponInfo weaponinfo.Service) Service {
	return &service{
		repo:        repo,
		weaponInfo:  weaponInfo,
		rollPercent: utils.RandomPercent,
		randInt:     utils.RandomInt,
		randFloat:   utils.RandomFloat,
	}
}

// AttemptUpgrade resolves one upgrade attempt. The whole transition runs
// inside a single transaction with the player row locked: gold is spent,
// the outcome rolled, protection applied and the audit row appended, or
// none of it happens.
func (s *service) AttemptUpgrade(ctx context.Context, playerID string, protection domain.ProtectionTier) (*Result, error) {
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

	fromLevel := player.Weapon.Level
	if fromLevel >= domain.MaxWeaponLevel {
		return nil, domain.ErrMaxLevelReached
	}

	cost := gamedata.UpgradeCost(fromLevel)
	if player.Gold < cost {
		return nil, domain.ErrInsufficientGold
	}

	if protection != domain.ProtectionNone {
		if !protection.UsableAt(fromLevel) {
			return nil, domain.ErrProtectionIneligible
		}
		if player.ProtectionCount(protection) <= 0 {
			return nil, domain.ErrProtectionDepleted
		}
	}

	preWeapon := player.Weapon
	player.Gold -= cost

	roll := s.rollPercent()
	outcome := gamedata.UpgradeChances[fromLevel].Resolve(roll)

	usedProtection := domain.ProtectionNone
	destroyed := false

	if outcome == domain.OutcomeDestroy && protection != domain.ProtectionNone {
		// A token intercepts the destruction. Low and mid keep the level,
		// high steps it down by one instead.
		outcome = domain.OutcomeMaintain
		usedProtection = protection
		player.ConsumeProtection(protection)
		if protection == domain.ProtectionHigh && player.Weapon.Level > 0 {
			player.Weapon.Level--
		}
	}

	switch outcome {
	case domain.OutcomeSuccess:
		player.Weapon.Level++
		player.TotalSuccesses++
		player.CurrentSuccessStreak++
		if player.CurrentSuccessStreak > player.MaxSuccessStreak {
			player.MaxSuccessStreak = player.CurrentSuccessStreak
		}
		if player.Weapon.Level > player.BestLevel(player.Weapon.Type) {
			player.SetBestLevel(player.Weapon.Type, player.Weapon.Level)
		}
	case domain.OutcomeMaintain:
		player.TotalMaintains++
		player.CurrentSuccessStreak = 0
	case domain.OutcomeDestroy:
		destroyed = true
		player.TotalDestroys++
		player.CurrentSuccessStreak = 0
		player.AddDestroyCount(player.Weapon.Type)
		player.Weapon = s.rerollWeapon()
	}
	player.TotalUpgrades++

	toLevel := player.Weapon.Level
	result := outcome
	logRow := domain.UpgradeLog{
		PlayerID:       player.ID,
		Action:         domain.ActionUpgrade,
		WeaponType:     preWeapon.Type,
		WeaponConcept:  preWeapon.Concept,
		WeaponName:     s.weaponInfo.Describe(ctx, preWeapon).Name,
		FromLevel:      fromLevel,
		ToLevel:        &toLevel,
		Result:         &result,
		GoldChange:     -cost,
		UsedProtection: usedProtection,
	}

	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdatePlayer, err)
	}
	if err := tx.InsertUpgradeLog(ctx, logRow); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToInsertLog, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	log.Info(LogMsgUpgradeResolved, "player_id", playerID, "outcome", outcome,
		"from_level", fromLevel, "to_level", toLevel, "cost", cost,
		"used_protection", string(usedProtection))

	return &Result{
		Outcome:        outcome,
		FromLevel:      fromLevel,
		ToLevel:        toLevel,
		GoldSpent:      cost,
		UsedProtection: usedProtection,
		Destroyed:      destroyed,
		WeaponName:     s.weaponInfo.Describe(ctx, player.Weapon).Name,
		Player:         *player,
	}, nil
}

// SellWeapon pays out twice the current level's upgrade cost, scaled by a
// uniform factor in [0.8, 1.2], then replaces the weapon with a random +0
// one. A +0 weapon cannot be sold.
func (s *service) SellWeapon(ctx context.Context, playerID string) (*SellResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	soldLevel := player.Weapon.Level
	if soldLevel <= 0 {
		return nil, domain.ErrCannotSellBaseWeapon
	}

	preWeapon := player.Weapon
	factor := SellFactorMin + s.randFloat()*(SellFactorMax-SellFactorMin)
	payout := int64(math.Floor(float64(SellBaseMultiplier*gamedata.UpgradeCost(soldLevel)) * factor))

	player.Gold += payout
	player.Weapon = s.rerollWeapon()

	logRow := domain.UpgradeLog{
		PlayerID:      player.ID,
		Action:        domain.ActionSell,
		WeaponType:    preWeapon.Type,
		WeaponConcept: preWeapon.Concept,
		WeaponName:    s.weaponInfo.Describe(ctx, preWeapon).Name,
		FromLevel:     soldLevel,
		GoldChange:    payout,
	}

	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdatePlayer, err)
	}
	if err := tx.InsertUpgradeLog(ctx, logRow); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToInsertLog, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	logger.FromContext(ctx).Info(LogMsgWeaponSold, "player_id", playerID,
		"sold_level", soldLevel, "payout", payout)

	return &SellResult{
		SoldLevel:  soldLevel,
		Payout:     payout,
		WeaponName: s.weaponInfo.Describe(ctx, player.Weapon).Name,
		Player:     *player,
	}, nil
}

// rerollWeapon hands out a fresh +0 weapon with uniformly random type and
// concept. Used after destruction and after a sale.
func (s *service) rerollWeapon() domain.Weapon {
	weaponType := domain.WeaponTypes[s.randInt(0, len(domain.WeaponTypes)-1)]
	concepts := gamedata.ConceptsFor(weaponType)
	return domain.Weapon{
		Type:    weaponType,
		Concept: concepts[s.randInt(0, len(concepts)-1)],
		Level:   0,
	}
}
