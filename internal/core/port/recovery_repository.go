package port

import (
	"context"

	"github.com/abh6007/job-board-app/internal/core/domain"
)

// RecoveryCodeRepository persists the single system-wide recovery code.
type RecoveryCodeRepository interface {
	// GetOrCreate stores the candidate code if none exists yet and returns the
	// winning code. Concurrent callers all observe the same stored value.
	GetOrCreate(ctx context.Context, candidate *domain.RecoveryCode) (*domain.RecoveryCode, error)

	// Get returns the current code. Returns repository.ErrNotFound when none
	// has been issued.
	Get(ctx context.Context) (*domain.RecoveryCode, error)
}
