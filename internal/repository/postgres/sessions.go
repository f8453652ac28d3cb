package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	squirrel "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/core/port"
	"github.com/abh6007/job-board-app/internal/repository"
)

// SessionRepository implements port.SessionRepository backed by PostgreSQL.
type SessionRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewSessionRepository constructs a repository backed by any executor that satisfies pgExecutor.
func NewSessionRepository(exec pgExecutor) *SessionRepository {
	return &SessionRepository{
		exec:    exec,
		builder: statementBuilder(),
	}
}

// Create persists a new session row.
func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	stmt, args, err := r.builder.Insert("sessions").
		Columns(
			"token_hash",
			"user_id",
			"created_at",
			"expires_at",
		).
		Values(
			session.TokenHash,
			session.UserID,
			session.CreatedAt,
			session.ExpiresAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert session sql: %w", err)
	}

	if _, err := r.exec.Exec(ctx, stmt, args...); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

// GetByTokenHash fetches a session by its hashed token regardless of expiry.
func (r *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	stmt, args, err := r.builder.
		Select("token_hash", "user_id", "created_at", "expires_at").
		From("sessions").
		Where(squirrel.Eq{"token_hash": tokenHash}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select session sql: %w", err)
	}

	var session domain.Session
	if err := r.exec.QueryRow(ctx, stmt, args...).Scan(
		&session.TokenHash,
		&session.UserID,
		&session.CreatedAt,
		&session.ExpiresAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return &session, nil
}

// Delete removes the session. Removing an absent session succeeds silently so
// logout stays idempotent.
func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	stmt, args, err := r.builder.Delete("sessions").
		Where(squirrel.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete session sql: %w", err)
	}

	if _, err := r.exec.Exec(ctx, stmt, args...); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// DeleteExpired purges sessions that expired before the supplied moment.
func (r *SessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	stmt, args, err := r.builder.Delete("sessions").
		Where(squirrel.Lt{"expires_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired sessions sql: %w", err)
	}

	ct, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return ct.RowsAffected(), nil
}

var _ port.SessionRepository = (*SessionRepository)(nil)
