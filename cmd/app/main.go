package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dokkaebistudio/kanghwa-server/internal/battle"
	"github.com/dokkaebistudio/kanghwa-server/internal/bootstrap"
	"github.com/dokkaebistudio/kanghwa-server/internal/checkin"
	"github.com/dokkaebistudio/kanghwa-server/internal/config"
	"github.com/dokkaebistudio/kanghwa-server/internal/database"
	"github.com/dokkaebistudio/kanghwa-server/internal/feed"
	"github.com/dokkaebistudio/kanghwa-server/internal/gamedata"
	"github.com/dokkaebistudio/kanghwa-server/internal/hunt"
	"github.com/dokkaebistudio/kanghwa-server/internal/player"
	"github.com/dokkaebistudio/kanghwa-server/internal/server"
	"github.com/dokkaebistudio/kanghwa-server/internal/session"
	"github.com/dokkaebistudio/kanghwa-server/internal/shop"
	"github.com/dokkaebistudio/kanghwa-server/internal/upgrade"
	"github.com/dokkaebistudio/kanghwa-server/internal/weaponinfo"
	"github.com/dokkaebistudio/kanghwa-server/internal/worker"
	"github.com/dokkaebistudio/kanghwa-server/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	initLogger(cfg)
	for _, w := range warnings {
		slog.Warn(w)
	}
	slog.Info("Starting kanghwa-server", "version", cfg.Version, "environment", cfg.Environment)

	if err := gamedata.Validate(); err != nil {
		log.Fatalf("Invalid game data tables: %v", err)
	}

	connString := cfg.GetDBConnString()
	dbPool, err := database.NewPool(connString, cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.Migrate(context.Background(), connString, migrations.FS); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	sessionService := session.NewService(repos.Session)
	weaponInfoService := weaponinfo.NewService(repos.Weapon)
	playerService := player.NewService(repos.Player, sessionService, weaponInfoService)
	upgradeService := upgrade.NewService(repos.Player, weaponInfoService)
	huntService := hunt.NewService(repos.Player)
	battleService := battle.NewService(repos.Player, weaponInfoService)
	checkinService := checkin.NewService(repos.Player)
	shopService := shop.NewService(repos.Player)
	feedService := feed.NewService(repos.Logs)

	sessionPurger := worker.NewSessionPurgeWorker(sessionService, worker.DefaultPurgeInterval)
	sessionPurger.Start()

	srv := server.NewServer(
		cfg.Port,
		cfg.TrustedProxies,
		dbPool,
		playerService,
		sessionService,
		upgradeService,
		huntService,
		battleService,
		checkinService,
		shopService,
		feedService,
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	case sig := <-quit:
		slog.Info("Received shutdown signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		SessionPurgeWorker: sessionPurger,
	})
}
