package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/mealrank/backend/internal/model"
)

const rollbackSuffix = "_rollback.sql"

// ErrNoMigrations is returned by RollbackLast when nothing has been applied.
var ErrNoMigrations = errors.New("no migrations to rollback")

// Migrate brings the schema up to date: gorm auto-migration on SQLite, the SQL
// files in migrationsDir on PostgreSQL.
func Migrate(ctx context.Context, db *gorm.DB, migrationsDir string, logger *zap.Logger) error {
	if db.Dialector.Name() == "sqlite" {
		logger.Debug("using gorm auto-migration for sqlite")
		return db.AutoMigrate(model.All()...)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	_, err = ApplySQLMigrations(ctx, sqlDB, migrationsDir, logger)
	return err
}

func ensureMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	return nil
}

// migrationFiles lists forward migrations in dir, sorted by name.
func migrationFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".sql" || strings.HasSuffix(name, rollbackSuffix) {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

// ApplySQLMigrations runs each pending migration in its own transaction and
// records it in schema_migrations. It returns the names it applied.
func ApplySQLMigrations(ctx context.Context, db *sql.DB, dir string, logger *zap.Logger) ([]string, error) {
	if err := ensureMigrationsTable(ctx, db); err != nil {
		return nil, err
	}
	files, err := migrationFiles(dir)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, file := range files {
		var done bool
		if err := db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name = $1)", file).Scan(&done); err != nil {
			return applied, fmt.Errorf("failed to check migration status: %w", err)
		}
		if done {
			logger.Debug("skipping migration", zap.String("file", file))
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return applied, fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		err = inTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return fmt.Errorf("failed to apply migration %s: %w", file, err)
			}
			if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", file); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", file, err)
			}
			return nil
		})
		if err != nil {
			return applied, err
		}

		logger.Info("applied migration", zap.String("file", file))
		applied = append(applied, file)
	}
	return applied, nil
}

// RollbackLast reverts the most recently applied migration using its
// <name>_rollback.sql companion and returns the reverted name.
func RollbackLast(ctx context.Context, db *sql.DB, dir string) (string, error) {
	if err := ensureMigrationsTable(ctx, db); err != nil {
		return "", err
	}

	var name string
	err := db.QueryRowContext(ctx, "SELECT name FROM schema_migrations ORDER BY applied_at DESC, name DESC LIMIT 1").Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoMigrations
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last migration: %w", err)
	}

	rollbackPath := filepath.Join(dir, strings.TrimSuffix(name, ".sql")+rollbackSuffix)
	content, err := os.ReadFile(rollbackPath)
	if err != nil {
		return "", fmt.Errorf("rollback file not found: %w", err)
	}

	err = inTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute rollback: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE name = $1", name); err != nil {
			return fmt.Errorf("failed to remove migration record: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

func inTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
