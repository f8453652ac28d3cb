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

// UserRepository implements port.UserRepository using PostgreSQL.
type UserRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewUserRepository constructs a repository backed by any executor that satisfies pgExecutor.
func NewUserRepository(exec pgExecutor) *UserRepository {
	return &UserRepository{
		exec:    exec,
		builder: statementBuilder(),
	}
}

// Create inserts a new user row.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	var emailValue any
	if user.Email != "" {
		emailValue = user.Email
	}

	stmt, args, err := r.builder.Insert("users").
		Columns(
			"id",
			"username",
			"email",
			"first_name",
			"last_name",
			"password_hash",
			"is_admin",
			"created_at",
			"updated_at",
		).
		Values(
			user.ID,
			user.Username,
			emailValue,
			user.FirstName,
			user.LastName,
			user.PasswordHash,
			user.IsAdmin,
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user sql: %w", err)
	}

	if _, err := r.exec.Exec(ctx, stmt, args...); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by identifier.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	stmt, args, err := r.selectUsers().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user sql: %w", err)
	}

	user, err := scanUser(r.exec.QueryRow(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by exact username match.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	stmt, args, err := r.selectUsers().
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user by username sql: %w", err)
	}

	user, err := scanUser(r.exec.QueryRow(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("scan user by username: %w", err)
	}

	return user, nil
}

// UpdatePassword replaces the stored credential digest.
func (r *UserRepository) UpdatePassword(ctx context.Context, id string, passwordHash string, changedAt time.Time) error {
	stmt, args, err := r.builder.Update("users").
		Set("password_hash", passwordHash).
		Set("updated_at", changedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update password sql: %w", err)
	}

	ct, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Count returns the total number of user accounts.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	stmt, args, err := r.builder.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count users sql: %w", err)
	}

	var count int64
	if err := r.exec.QueryRow(ctx, stmt, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("scan users count: %w", err)
	}

	return int(count), nil
}

func (r *UserRepository) selectUsers() squirrel.SelectBuilder {
	return r.builder.Select(
		"id",
		"username",
		"email",
		"first_name",
		"last_name",
		"password_hash",
		"is_admin",
		"created_at",
		"updated_at",
	).From("users")
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user  domain.User
		email sql.NullString
	)

	if err := row.Scan(
		&user.ID,
		&user.Username,
		&email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if email.Valid {
		user.Email = email.String
	}

	return &user, nil
}

var _ port.UserRepository = (*UserRepository)(nil)
