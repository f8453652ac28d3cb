package port

import (
	"context"
	"time"

	"github.com/abh6007/job-board-app/internal/core/domain"
)

// SessionRepository persists login sessions keyed by hashed token.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error

	// GetByTokenHash returns the session regardless of expiry; callers decide
	// validity via Session.IsActive. Returns repository.ErrNotFound when absent.
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)

	// Delete removes the session. Deleting an absent session is not an error.
	Delete(ctx context.Context, tokenHash string) error

	// DeleteExpired removes sessions that expired before the given moment and
	// reports how many rows were purged.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
