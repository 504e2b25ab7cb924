package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/pageza/mealrank/backend/config"
	"github.com/pageza/mealrank/backend/internal/database"
	"github.com/pageza/mealrank/backend/internal/logging"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "migrations", "Directory holding the .sql migrations")
	flag.Parse()

	logger := logging.Must("info", config.IsProduction())
	defer func() { _ = logger.Sync() }()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Fatal("DATABASE_URL is not set and configuration failed to load", zap.Error(err))
		}
		dsn = cfg.DatabaseDSN()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if *rollback {
		name, err := database.RollbackLast(ctx, db, *dir)
		if errors.Is(err, database.ErrNoMigrations) {
			fmt.Println("No migrations to rollback")
			return
		}
		if err != nil {
			logger.Fatal("rollback failed", zap.Error(err))
		}
		fmt.Printf("Successfully rolled back migration: %s\n", name)
		return
	}

	applied, err := database.ApplySQLMigrations(ctx, db, *dir, logger)
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	for _, name := range applied {
		fmt.Printf("Applied migration: %s\n", name)
	}
	fmt.Println("All migrations applied successfully.")
}
