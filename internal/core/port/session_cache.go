package port

import (
	"context"
	"time"

	"github.com/abh6007/job-board-app/internal/core/domain"
)

// SessionCache is an optional read-through cache in front of the session
// store. Implementations must treat every operation as best effort: a cache
// failure never fails the request.
type SessionCache interface {
	Get(ctx context.Context, tokenHash string) (*domain.Session, error)
	Set(ctx context.Context, session *domain.Session, ttl time.Duration) error
	Delete(ctx context.Context, tokenHash string) error
}
