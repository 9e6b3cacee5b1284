package main

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dokkaebistudio/kanghwa-server/internal/config"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed database with demo players for local testing"
}

// seedPlayers are inserted so rankings and battle matchmaking have
// opponents on a fresh database.
var seedPlayers = []struct {
	nickname string
	weapon   string
	concept  string
	level    int
	gold     int64
	wins     int
}{
	{"검객왕", "칼", "그림자", 7, 500000, 12},
	{"궁수짱", "활", "사냥", 5, 120000, 6},
	{"마법사", "지팡이", "마력", 9, 2000000, 20},
	{"방패맨", "방패", "수호", 3, 40000, 2},
	{"몽둥이", "몽둥이", "야만", 11, 8000000, 31},
}

func (c *SeedCommand) Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sql.Open("pgx", cfg.GetDBConnString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	PrintInfo("Seeding demo players...")

	const insert = `
		INSERT INTO players (nickname, weapon_type, weapon_concept, weapon_level, gold, total_wins)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (nickname) DO NOTHING`

	for _, p := range seedPlayers {
		if _, err := db.Exec(insert, p.nickname, p.weapon, p.concept, p.level, p.gold, p.wins); err != nil {
			return fmt.Errorf("failed to seed player %s: %w", p.nickname, err)
		}
	}

	PrintSuccess("Seeded %d demo players", len(seedPlayers))
	return nil
}
