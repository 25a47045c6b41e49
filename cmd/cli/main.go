package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/flightbook/internal/booking"
	"github.com/dmitrijs2005/flightbook/internal/cli"
	"github.com/dmitrijs2005/flightbook/internal/config"
	"github.com/dmitrijs2005/flightbook/internal/logging"
	"github.com/dmitrijs2005/flightbook/internal/repositories/repomanager"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "opening database failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()

	if cfg.MigrateOnStart {
		if err := rm.RunMigrations(ctx, db); err != nil {
			logger.Error(ctx, "running migrations failed", "error", err)
			os.Exit(1)
		}
	}

	svc := booking.NewService(db, rm, logger, cfg.MaxTxAttempts)

	app := cli.NewApp(svc, logger)
	app.Run(ctx)
}
