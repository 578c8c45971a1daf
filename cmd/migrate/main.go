package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/SergeyBogomolovv/shoppy/internal/config"
	"github.com/SergeyBogomolovv/shoppy/internal/migrate"
	"github.com/SergeyBogomolovv/shoppy/internal/postgres"
	"github.com/joho/godotenv"
)

func main() {
	down := flag.Bool("down", false, "roll back all migrations")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil)).With(slog.String("cmd", "migrate"))
	conf := config.New()
	dsn := postgres.DSN(conf.Postgres)

	ctx := context.Background()
	apply, action := migrate.Up, "up"
	if *down {
		apply, action = migrate.Down, "down"
	}

	if err := apply(ctx, dsn); err != nil {
		logger.Error("failed to apply migrations", slog.String("direction", action), slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("migrations applied", slog.String("direction", action))
}

func init() {
	godotenv.Load()
}
