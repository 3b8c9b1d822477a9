package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"barkeep/internal/config"
	"barkeep/internal/db"
	"barkeep/internal/db/mock"
	applog "barkeep/internal/log"
	"barkeep/internal/server"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		applog.Debug(ctx, "no .env file found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "error", err)
		os.Exit(1)
	}

	database, err := openDatabase(ctx, cfg)
	if err != nil {
		applog.Error(ctx, "failed to configure database", "error", err)
		os.Exit(1)
	}

	srv := server.New(server.Config{
		Addr:           cfg.Server.Addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Database:       database,
	})

	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	<-sigCh

	applog.Info(ctx, "shutting down http server")
	if err := srv.Stop(); err != nil {
		applog.Error(ctx, "graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

func openDatabase(ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	if cfg.Database.UseMock || cfg.Database.URL == "" {
		applog.Info(ctx, "no database url configured, using seeded in-memory database")
		return mock.New(ctx)
	}
	return db.Configure(cfg.Database)
}
