package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dokkaebistudio/kanghwa-server/internal/database/postgres"
	"github.com/dokkaebistudio/kanghwa-server/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Player  repository.Player
	Session repository.Session
	Weapon  repository.Weapon
	Logs    repository.Logs
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Player:  postgres.NewPlayerRepository(dbPool),
		Session: postgres.NewSessionRepository(dbPool),
		Weapon:  postgres.NewWeaponRepository(dbPool),
		Logs:    postgres.NewLogsRepository(dbPool),
	}
}
