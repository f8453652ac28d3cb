package database

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/abh6007/job-board-app/internal/infra/config"
	"github.com/abh6007/job-board-app/internal/repository/postgres/migrations"
)

// Migrate applies all pending schema migrations through the embedded goose
// files. It opens a short-lived database/sql connection because goose does
// not speak the pgx pool interface.
func Migrate(cfg config.PostgresSettings, log *zap.Logger) error {
	db, err := sql.Open("pgx", DSN(cfg))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}

	log.Info("database migrations applied", zap.Int64("version", version))
	return nil
}
