package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

// LogsRepository implements read access to the audit log tables
type LogsRepository struct {
	db *pgxpool.Pool
}

// NewLogsRepository creates a new LogsRepository
func NewLogsRepository(db *pgxpool.Pool) *LogsRepository {
	return &LogsRepository{db: db}
}

// RecentUpgradeLogs returns the newest upgrade/sell rows joined with the
// acting player's nickname for the activity feed.
func (r *LogsRepository) RecentUpgradeLogs(ctx context.Context, limit int) ([]domain.UpgradeLog, error) {
	query := `
		SELECT l.log_id, l.player_id, p.nickname, l.action, l.weapon_type, l.weapon_concept,
			l.weapon_name, l.weapon_description, l.from_level, l.to_level, l.result,
			l.gold_change, l.used_protection, l.created_at
		FROM upgrade_logs l
		JOIN players p ON p.player_id = l.player_id
		ORDER BY l.created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query upgrade logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.UpgradeLog
	for rows.Next() {
		var l domain.UpgradeLog
		var usedProtection string
		err := rows.Scan(
			&l.ID, &l.PlayerID, &l.Nickname, &l.Action, &l.WeaponType, &l.WeaponConcept,
			&l.WeaponName, &l.WeaponDesc, &l.FromLevel, &l.ToLevel, &l.Result,
			&l.GoldChange, &usedProtection, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upgrade log: %w", err)
		}
		l.UsedProtection = domain.ProtectionTier(usedProtection)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read upgrade logs: %w", err)
	}
	return logs, nil
}

// RecentBattleLogs returns the newest battle rows for one player
func (r *LogsRepository) RecentBattleLogs(ctx context.Context, playerID string, limit int) ([]domain.BattleLog, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT log_id, player_id, my_weapon_type, my_weapon_concept, my_weapon_level, my_weapon_name,
			opponent_id, opponent_weapon_type, opponent_weapon_concept, opponent_weapon_level,
			opponent_weapon_name, win_rate, matchup_bonus, result, gold_earned, battle_message, created_at
		FROM battle_logs
		WHERE player_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, playerUUID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query battle logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.BattleLog
	for rows.Next() {
		var l domain.BattleLog
		err := rows.Scan(
			&l.ID, &l.PlayerID, &l.MyWeaponType, &l.MyWeaponConcept, &l.MyWeaponLevel, &l.MyWeaponName,
			&l.OpponentID, &l.OpponentWeaponType, &l.OpponentConcept, &l.OpponentWeaponLevel,
			&l.OpponentWeaponName, &l.WinRate, &l.MatchupBonus, &l.Result, &l.GoldEarned, &l.BattleMessage, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan battle log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read battle logs: %w", err)
	}
	return logs, nil
}
