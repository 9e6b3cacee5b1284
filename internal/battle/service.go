package battle

import (
	"context"
	"fmt"
	"time"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/gamedata"
	"github.com/dokkaebistudio/kanghwa-server/internal/logger"
	"github.com/dokkaebistudio/kanghwa-server/internal/repository"
	"github.com/dokkaebistudio/kanghwa-server/internal/utils"
	"github.com/dokkaebistudio/kanghwa-server/internal/weaponinfo"
)

// OpponentView is the public snapshot of the matched opponent.
type OpponentView struct {
	Nickname    string            `json:"nickname"`
	WeaponType  domain.WeaponType `json:"weapon_type"`
	WeaponName  string            `json:"weapon_name"`
	WeaponLevel int               `json:"weapon_level"`
	TotalWins   int               `json:"total_wins"`
	TotalLosses int               `json:"total_losses"`
}

// Result is the outcome of one executed battle.
type Result struct {
	Outcome      domain.BattleOutcome `json:"outcome"`
	Opponent     OpponentView         `json:"opponent"`
	WinRate      int                  `json:"win_rate"`
	MatchupBonus int                  `json:"matchup_bonus"`
	GoldEarned   int64                `json:"gold_earned"`
	Message      string               `json:"message"`
	TicketsLeft  int                  `json:"tickets_left"`
	Player       domain.Player        `json:"player"`
}

// TicketInfo reports the current ticket balance after lazy regeneration.
type TicketInfo struct {
	Tickets       int            `json:"tickets"`
	MaxTickets    int            `json:"max_tickets"`
	NextRegenIn   *time.Duration `json:"next_regen_in,omitempty"`
	RegenInterval time.Duration  `json:"regen_interval"`
}

// RankingsResult is the leaderboard plus the viewer's own position,
// which may fall outside the listed page.
type RankingsResult struct {
	Rankings []RankingEntry `json:"rankings"`
	MyRank   int            `json:"my_rank"`
}

// RankingEntry is one row of the leaderboard.
type RankingEntry struct {
	Rank        int               `json:"rank"`
	Nickname    string            `json:"nickname"`
	WeaponType  domain.WeaponType `json:"weapon_type"`
	WeaponName  string            `json:"weapon_name"`
	WeaponLevel int               `json:"weapon_level"`
	TotalWins   int               `json:"total_wins"`
	TotalLosses int               `json:"total_losses"`
}

// Service defines the interface for battle operations
type Service interface {
	// Execute spends one ticket, matches a random opponent and resolves
	// the fight against their stored state. The opponent is never
	// notified and loses nothing.
	Execute(ctx context.Context, playerID string) (*Result, error)

	// Tickets applies lazy ticket regeneration and reports the balance.
	Tickets(ctx context.Context, playerID string) (*TicketInfo, error)

	// Rankings returns the leaderboard and the viewer's own rank.
	Rankings(ctx context.Context, playerID string, limit int) (*RankingsResult, error)
}

type service struct {
	repo       repository.Player
	weaponInfo weaponinfo.Service

	rollPercent func() float64
	randInt     func(min, max int) int
	now         func() time.Time
}

// NewService creates a new battle service
func NewService(repo repository.Player, weaponInfo weaponinfo.Service) Service {
	return &service{
		repo:        repo,
		weaponInfo:  weaponInfo,
		rollPercent: utils.RandomPercent,
		randInt:     utils.RandomInt,
		now:         time.Now,
	}
}

// regenTickets applies lazy ticket regeneration in place. One ticket
// accrues per regen interval; the stamp advances by exactly the accrued
// intervals so partial progress carries over, and snaps to now only when
// the balance hits the cap.
func regenTickets(player *domain.Player, now time.Time) {
	if player.LastTicketRegenAt == nil {
		player.LastTicketRegenAt = &now
		return
	}
	if player.BattleTickets >= domain.MaxBattleTickets {
		player.LastTicketRegenAt = &now
		return
	}

	interval := time.Duration(domain.TicketRegenHours) * time.Hour
	elapsed := now.Sub(*player.LastTicketRegenAt)
	ticketsToAdd := int(elapsed / interval)
	if ticketsToAdd <= 0 {
		return
	}

	if player.BattleTickets+ticketsToAdd >= domain.MaxBattleTickets {
		player.BattleTickets = domain.MaxBattleTickets
		player.LastTicketRegenAt = &now
		return
	}

	player.BattleTickets += ticketsToAdd
	advanced := player.LastTicketRegenAt.Add(time.Duration(ticketsToAdd) * interval)
	player.LastTicketRegenAt = &advanced
}

func (s *service) Execute(ctx context.Context, playerID string) (*Result, error) {
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

	regenTickets(player, s.now())
	if player.BattleTickets <= 0 {
		return nil, domain.ErrNoTickets
	}

	opponents, err := s.repo.ListOpponents(ctx, playerID, MaxOpponentPool)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListOpponents, err)
	}
	if len(opponents) == 0 {
		return nil, domain.ErrNoOpponents
	}
	opponent := opponents[s.randInt(0, len(opponents)-1)]

	bonus := gamedata.MatchupBonus(player.Weapon.Type, opponent.Weapon.Type)
	winRate := gamedata.WinRate(player.Weapon.Level, opponent.Weapon.Level, bonus)

	won := s.rollPercent() < float64(winRate)
	outcome := domain.BattleLose
	var reward int64
	if won {
		outcome = domain.BattleWin
		reward = WinRewardMultiplier * gamedata.UpgradeCost(opponent.Weapon.Level)
	}

	player.BattleTickets--
	player.Gold += reward
	if won {
		player.TotalWins++
	} else {
		player.TotalLosses++
	}

	myWeaponName := s.weaponInfo.Describe(ctx, player.Weapon).Name
	oppWeaponName := s.weaponInfo.Describe(ctx, opponent.Weapon).Name
	message := buildBattleMessage(
		player.DisplayName(), myWeaponName, player.Weapon.Level,
		opponent.DisplayName(), oppWeaponName, opponent.Weapon.Level,
		player.Weapon.Type, opponent.Weapon.Type, won,
	)

	logRow := domain.BattleLog{
		PlayerID:            player.ID,
		MyWeaponType:        player.Weapon.Type,
		MyWeaponConcept:     player.Weapon.Concept,
		MyWeaponLevel:       player.Weapon.Level,
		MyWeaponName:        myWeaponName,
		OpponentID:          opponent.ID,
		OpponentWeaponType:  opponent.Weapon.Type,
		OpponentConcept:     opponent.Weapon.Concept,
		OpponentWeaponLevel: opponent.Weapon.Level,
		OpponentWeaponName:  oppWeaponName,
		WinRate:             winRate,
		MatchupBonus:        bonus,
		Result:              outcome,
		GoldEarned:          reward,
		BattleMessage:       message,
	}

	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdatePlayer, err)
	}
	if err := tx.InsertBattleLog(ctx, logRow); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToInsertLog, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	log.Info(LogMsgBattleResolved, "player_id", playerID, "opponent_id", opponent.ID,
		"outcome", outcome, "win_rate", winRate, "gold_earned", reward)

	return &Result{
		Outcome: outcome,
		Opponent: OpponentView{
			Nickname:    opponent.DisplayName(),
			WeaponType:  opponent.Weapon.Type,
			WeaponName:  oppWeaponName,
			WeaponLevel: opponent.Weapon.Level,
			TotalWins:   opponent.TotalWins,
			TotalLosses: opponent.TotalLosses,
		},
		WinRate:      winRate,
		MatchupBonus: bonus,
		GoldEarned:   reward,
		Message:      message,
		TicketsLeft:  player.BattleTickets,
		Player:       *player,
	}, nil
}

func (s *service) Tickets(ctx context.Context, playerID string) (*TicketInfo, error) {
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
	regenTickets(player, now)

	if err := tx.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdatePlayer, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	interval := time.Duration(domain.TicketRegenHours) * time.Hour
	info := &TicketInfo{
		Tickets:       player.BattleTickets,
		MaxTickets:    domain.MaxBattleTickets,
		RegenInterval: interval,
	}
	if player.BattleTickets < domain.MaxBattleTickets && player.LastTicketRegenAt != nil {
		next := interval - now.Sub(*player.LastTicketRegenAt)
		if next < 0 {
			next = 0
		}
		info.NextRegenIn = &next
	}
	return info, nil
}

func (s *service) Rankings(ctx context.Context, playerID string, limit int) (*RankingsResult, error) {
	if limit <= 0 || limit > MaxRankingLimit {
		limit = DefaultRankingLimit
	}

	players, err := s.repo.Rankings(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListRankings, err)
	}

	myRank, err := s.repo.Rank(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRank, err)
	}

	entries := make([]RankingEntry, 0, len(players))
	for i, p := range players {
		entries = append(entries, RankingEntry{
			Rank:        i + 1,
			Nickname:    p.DisplayName(),
			WeaponType:  p.Weapon.Type,
			WeaponName:  s.weaponInfo.Describe(ctx, p.Weapon).Name,
			WeaponLevel: p.Weapon.Level,
			TotalWins:   p.TotalWins,
			TotalLosses: p.TotalLosses,
		})
	}
	return &RankingsResult{Rankings: entries, MyRank: myRank}, nil
}
