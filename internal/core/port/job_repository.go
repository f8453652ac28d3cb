package port

import (
	"context"

	"github.com/abh6007/job-board-app/internal/core/domain"
)

// JobFilter narrows job listings. Zero values mean "no constraint".
type JobFilter struct {
	Search   string
	Location string
	Type     string
	Statuses []domain.JobStatus
}

// JobRepository persists job listings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id int64) error

	// IncrementClicks bumps click_count atomically in storage.
	IncrementClicks(ctx context.Context, id int64) error

	// IncrementSearches bumps search_count for every listed job id.
	IncrementSearches(ctx context.Context, ids []int64) error

	// Stats aggregates counts and top listings for the admin dashboard.
	Stats(ctx context.Context, topN uint64) (*domain.BoardStats, error)
}
