package main

import (
	"context"
	"embed"
	"log/slog"
	"os"

	"github.com/ghuser/packstack/pkg/config"
	"github.com/ghuser/packstack/pkg/logger"
	"github.com/ghuser/packstack/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)
	if err := migrator.Run(context.Background(), cfg.DatabaseURL, "inventory", MigrationsFS, log); err != nil {
		log.Error("inventory migrations failed", "error", err)
		os.Exit(1)
	}
}
