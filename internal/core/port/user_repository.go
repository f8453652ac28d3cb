package port

import (
	"context"
	"time"

	"github.com/abh6007/job-board-app/internal/core/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts the user. Returns repository.ErrConflict when the
	// username or email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID fetches a user by primary key. Returns repository.ErrNotFound
	// when absent.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByUsername fetches a user by exact username match.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// UpdatePassword replaces the stored credential digest.
	UpdatePassword(ctx context.Context, id string, passwordHash string, changedAt time.Time) error

	// Count reports the total number of accounts, used during bootstrap.
	Count(ctx context.Context) (int, error)
}
