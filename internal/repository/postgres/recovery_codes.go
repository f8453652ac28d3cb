package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	squirrel "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/core/port"
	"github.com/abh6007/job-board-app/internal/repository"
)

// RecoveryCodeRepository implements port.RecoveryCodeRepository backed by PostgreSQL.
// The table holds at most one row enforced by a fixed primary key.
type RecoveryCodeRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewRecoveryCodeRepository constructs a repository backed by any executor that satisfies pgExecutor.
func NewRecoveryCodeRepository(exec pgExecutor) *RecoveryCodeRepository {
	return &RecoveryCodeRepository{
		exec:    exec,
		builder: statementBuilder(),
	}
}

// GetOrCreate stores the candidate code unless one already exists, then
// returns whichever code won. ON CONFLICT DO NOTHING keeps concurrent callers
// from overwriting each other.
func (r *RecoveryCodeRepository) GetOrCreate(ctx context.Context, candidate *domain.RecoveryCode) (*domain.RecoveryCode, error) {
	stmt, args, err := r.builder.Insert("recovery_codes").
		Columns("id", "code", "created_at").
		Values(1, candidate.Code, candidate.CreatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert recovery code sql: %w", err)
	}

	if _, err := r.exec.Exec(ctx, stmt, args...); err != nil {
		return nil, fmt.Errorf("insert recovery code: %w", err)
	}

	return r.Get(ctx)
}

// Get returns the current recovery code.
func (r *RecoveryCodeRepository) Get(ctx context.Context) (*domain.RecoveryCode, error) {
	stmt, args, err := r.builder.
		Select("code", "created_at").
		From("recovery_codes").
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select recovery code sql: %w", err)
	}

	var code domain.RecoveryCode
	if err := r.exec.QueryRow(ctx, stmt, args...).Scan(&code.Code, &code.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan recovery code: %w", err)
	}

	return &code, nil
}

var _ port.RecoveryCodeRepository = (*RecoveryCodeRepository)(nil)
