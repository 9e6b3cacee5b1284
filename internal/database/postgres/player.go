package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dokkaebistudio/kanghwa-server/internal/database"
	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/repository"
)

// playerColumns is the canonical column list for scanning a player row.
// Keep the order in sync with scanPlayer.
const playerColumns = `
	player_id, nickname,
	weapon_type, weapon_concept, weapon_level, gold,
	last_checkin_at, checkin_streak_day, today_checkin_gold, today_checkin_date,
	battle_tickets, last_ticket_regen_at, total_wins, total_losses,
	protection_low, protection_mid, protection_high,
	purchased_gold_small, purchased_gold_medium, purchased_gold_large,
	purchased_prot_low, purchased_prot_mid, purchased_prot_high,
	total_upgrades, total_successes, total_maintains, total_destroys,
	current_success_streak, max_success_streak,
	best_sword_level, best_bow_level, best_staff_level, best_shield_level, best_club_level,
	sword_destroy_count, bow_destroy_count, staff_destroy_count, shield_destroy_count, club_destroy_count,
	hunting_level, hunting_keys, is_hunting, hunting_started_at,
	created_at`

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(
		&p.ID, &p.Nickname,
		&p.Weapon.Type, &p.Weapon.Concept, &p.Weapon.Level, &p.Gold,
		&p.LastCheckinAt, &p.CheckinStreakDay, &p.TodayCheckinGold, &p.TodayCheckinDate,
		&p.BattleTickets, &p.LastTicketRegenAt, &p.TotalWins, &p.TotalLosses,
		&p.ProtectionLow, &p.ProtectionMid, &p.ProtectionHigh,
		&p.PurchasedGoldSmall, &p.PurchasedGoldMedium, &p.PurchasedGoldLarge,
		&p.PurchasedProtLow, &p.PurchasedProtMid, &p.PurchasedProtHigh,
		&p.TotalUpgrades, &p.TotalSuccesses, &p.TotalMaintains, &p.TotalDestroys,
		&p.CurrentSuccessStreak, &p.MaxSuccessStreak,
		&p.BestSwordLevel, &p.BestBowLevel, &p.BestStaffLevel, &p.BestShieldLevel, &p.BestClubLevel,
		&p.SwordDestroyCount, &p.BowDestroyCount, &p.StaffDestroyCount, &p.ShieldDestroyCount, &p.ClubDestroyCount,
		&p.HuntingLevel, &p.HuntingKeys, &p.IsHunting, &p.HuntingStartedAt,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func getPlayerByID(ctx context.Context, q dbtx, playerID string, forUpdate bool) (*domain.Player, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	player, err := scanPlayer(q.QueryRow(ctx, query, playerUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func updatePlayer(ctx context.Context, q dbtx, player domain.Player) error {
	playerUUID, err := parsePlayerUUID(player.ID)
	if err != nil {
		return err
	}

	query := `
		UPDATE players SET
			nickname = $2,
			weapon_type = $3, weapon_concept = $4, weapon_level = $5, gold = $6,
			last_checkin_at = $7, checkin_streak_day = $8, today_checkin_gold = $9, today_checkin_date = $10,
			battle_tickets = $11, last_ticket_regen_at = $12, total_wins = $13, total_losses = $14,
			protection_low = $15, protection_mid = $16, protection_high = $17,
			purchased_gold_small = $18, purchased_gold_medium = $19, purchased_gold_large = $20,
			purchased_prot_low = $21, purchased_prot_mid = $22, purchased_prot_high = $23,
			total_upgrades = $24, total_successes = $25, total_maintains = $26, total_destroys = $27,
			current_success_streak = $28, max_success_streak = $29,
			best_sword_level = $30, best_bow_level = $31, best_staff_level = $32, best_shield_level = $33, best_club_level = $34,
			sword_destroy_count = $35, bow_destroy_count = $36, staff_destroy_count = $37, shield_destroy_count = $38, club_destroy_count = $39,
			hunting_level = $40, hunting_keys = $41, is_hunting = $42, hunting_started_at = $43
		WHERE player_id = $1
	`
	tag, err := q.Exec(ctx, query,
		playerUUID, player.Nickname,
		player.Weapon.Type, player.Weapon.Concept, player.Weapon.Level, player.Gold,
		player.LastCheckinAt, player.CheckinStreakDay, player.TodayCheckinGold, player.TodayCheckinDate,
		player.BattleTickets, player.LastTicketRegenAt, player.TotalWins, player.TotalLosses,
		player.ProtectionLow, player.ProtectionMid, player.ProtectionHigh,
		player.PurchasedGoldSmall, player.PurchasedGoldMedium, player.PurchasedGoldLarge,
		player.PurchasedProtLow, player.PurchasedProtMid, player.PurchasedProtHigh,
		player.TotalUpgrades, player.TotalSuccesses, player.TotalMaintains, player.TotalDestroys,
		player.CurrentSuccessStreak, player.MaxSuccessStreak,
		player.BestSwordLevel, player.BestBowLevel, player.BestStaffLevel, player.BestShieldLevel, player.BestClubLevel,
		player.SwordDestroyCount, player.BowDestroyCount, player.StaffDestroyCount, player.ShieldDestroyCount, player.ClubDestroyCount,
		player.HuntingLevel, player.HuntingKeys, player.IsHunting, player.HuntingStartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func listPlayers(ctx context.Context, q dbtx, query string, args ...any) ([]domain.Player, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}
	return players, nil
}

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreatePlayer inserts a new player row and fills in the generated ID and
// creation timestamp.
func (r *PlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (weapon_type, weapon_concept, weapon_level, gold, battle_tickets, hunting_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING player_id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		player.Weapon.Type, player.Weapon.Concept, player.Weapon.Level,
		player.Gold, player.BattleTickets, player.HuntingLevel,
	).Scan(&player.ID, &player.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// GetPlayerByID fetches one player by ID
func (r *PlayerRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayerByID(ctx, r.db, playerID, false)
}

// GetPlayerByNickname fetches one player by nickname
func (r *PlayerRepository) GetPlayerByNickname(ctx context.Context, nickname string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE nickname = $1`
	player, err := scanPlayer(r.db.QueryRow(ctx, query, nickname))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by nickname: %w", err)
	}
	return player, nil
}

// UpdatePlayer writes the full mutable state of a player row
func (r *PlayerRepository) UpdatePlayer(ctx context.Context, player domain.Player) error {
	return updatePlayer(ctx, r.db, player)
}

// ListOpponents returns up to limit other players in random order
func (r *PlayerRepository) ListOpponents(ctx context.Context, excludePlayerID string, limit int) ([]domain.Player, error) {
	excludeUUID, err := parsePlayerUUID(excludePlayerID)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id != $1 ORDER BY random() LIMIT $2`
	return listPlayers(ctx, r.db, query, excludeUUID, limit)
}

// Rankings returns players ordered by weapon level, then win count
func (r *PlayerRepository) Rankings(ctx context.Context, limit int) ([]domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY weapon_level DESC, total_wins DESC, created_at ASC LIMIT $1`
	return listPlayers(ctx, r.db, query, limit)
}

// Rank returns the player's 1-based position under the Rankings ordering
func (r *PlayerRepository) Rank(ctx context.Context, playerID string) (int, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return 0, err
	}
	query := `
		SELECT (
			SELECT COUNT(*) FROM players p
			WHERE p.weapon_level > me.weapon_level
			   OR (p.weapon_level = me.weapon_level AND p.total_wins > me.total_wins)
			   OR (p.weapon_level = me.weapon_level AND p.total_wins = me.total_wins AND p.created_at < me.created_at)
		) + 1
		FROM players me WHERE me.player_id = $1
	`
	var rank int
	if err := r.db.QueryRow(ctx, query, playerUUID).Scan(&rank); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrPlayerNotFound
		}
		return 0, fmt.Errorf("failed to get player rank: %w", err)
	}
	return rank, nil
}

// BeginTx starts a player transaction
func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	return &playerTx{tx: tx}, nil
}

type playerTx struct {
	tx pgx.Tx
}

func (t *playerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *playerTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return errors.New(domain.ErrMsgTxClosed)
		}
		return err
	}
	return nil
}

// GetPlayerForUpdate fetches one player by ID with a row lock
func (t *playerTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayerByID(ctx, t.tx, playerID, true)
}

func (t *playerTx) UpdatePlayer(ctx context.Context, player domain.Player) error {
	return updatePlayer(ctx, t.tx, player)
}

func (t *playerTx) InsertUpgradeLog(ctx context.Context, log domain.UpgradeLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	query := `
		INSERT INTO upgrade_logs (log_id, player_id, action, weapon_type, weapon_concept,
			weapon_name, weapon_description, from_level, to_level, result, gold_change, used_protection)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := t.tx.Exec(ctx, query,
		log.ID, log.PlayerID, log.Action, log.WeaponType, log.WeaponConcept,
		log.WeaponName, log.WeaponDesc, log.FromLevel, log.ToLevel, log.Result,
		log.GoldChange, string(log.UsedProtection),
	)
	if err != nil {
		return fmt.Errorf("failed to insert upgrade log: %w", err)
	}
	return nil
}

func (t *playerTx) InsertBattleLog(ctx context.Context, log domain.BattleLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	query := `
		INSERT INTO battle_logs (log_id, player_id, my_weapon_type, my_weapon_concept, my_weapon_level,
			my_weapon_name, opponent_id, opponent_weapon_type, opponent_weapon_concept, opponent_weapon_level,
			opponent_weapon_name, win_rate, matchup_bonus, result, gold_earned, battle_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := t.tx.Exec(ctx, query,
		log.ID, log.PlayerID, log.MyWeaponType, log.MyWeaponConcept, log.MyWeaponLevel,
		log.MyWeaponName, log.OpponentID, log.OpponentWeaponType, log.OpponentConcept, log.OpponentWeaponLevel,
		log.OpponentWeaponName, log.WinRate, log.MatchupBonus, log.Result, log.GoldEarned, log.BattleMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to insert battle log: %w", err)
	}
	return nil
}

func (t *playerTx) InsertCheckinLog(ctx context.Context, log domain.CheckinLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	query := `INSERT INTO checkin_logs (log_id, player_id, reward_gold, streak_day) VALUES ($1, $2, $3, $4)`
	_, err := t.tx.Exec(ctx, query, log.ID, log.PlayerID, log.RewardGold, log.StreakDay)
	if err != nil {
		return fmt.Errorf("failed to insert checkin log: %w", err)
	}
	return nil
}

func (t *playerTx) InsertHuntingLog(ctx context.Context, log domain.HuntingLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	query := `INSERT INTO hunting_logs (log_id, player_id, hunting_level, reward_type, reward_amount) VALUES ($1, $2, $3, $4, $5)`
	_, err := t.tx.Exec(ctx, query, log.ID, log.PlayerID, log.HuntingLevel, log.RewardType, log.RewardAmount)
	if err != nil {
		return fmt.Errorf("failed to insert hunting log: %w", err)
	}
	return nil
}
