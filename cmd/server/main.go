package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Razooooo/CaristSI/internal/config"
	"github.com/Razooooo/CaristSI/internal/domain/catalog"
	"github.com/Razooooo/CaristSI/internal/domain/operators"
	"github.com/Razooooo/CaristSI/internal/domain/packages"
	"github.com/Razooooo/CaristSI/internal/domain/placements"
	"github.com/Razooooo/CaristSI/internal/domain/reports"
	"github.com/Razooooo/CaristSI/internal/infra/db"
	httpx "github.com/Razooooo/CaristSI/internal/infra/http"
	"github.com/Razooooo/CaristSI/internal/infra/logger"
	"github.com/Razooooo/CaristSI/internal/infra/notify"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	_ = gotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/example.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Telegram.Enabled {
		tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.AdminChatID, log)
		if err != nil {
			log.Error("telegram notifier init failed", "err", err)
			return
		}
		notifier = tg
		log.Info("telegram alerts enabled", "admin_chat_id", cfg.Telegram.AdminChatID)
	}

	ledger := placements.NewRepo(pool, cfg.Placement.StrictSlotExclusivity)
	handlers := httpx.NewHandlers(log,
		ledger,
		catalog.NewRepo(pool),
		packages.NewRepo(pool),
		reports.NewRepo(pool),
		operators.NewRepo(pool),
		notifier,
	)

	srv := httpx.New(cfg.HTTP.Addr, handlers, log, cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
