package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/core/port"
	"github.com/abh6007/job-board-app/internal/repository"
)

var (
	// ErrJobNotFound indicates the referenced listing does not exist.
	ErrJobNotFound = errors.New("job not found")
	// ErrInvalidJob indicates the listing payload failed validation.
	ErrInvalidJob = errors.New("invalid job")
)

const statsTopN = 5

// JobService owns listing CRUD, the public browse view, and engagement
// counters.
type JobService struct {
	jobs port.JobRepository
	log  *zap.Logger
}

// NewJobService constructs a JobService instance.
func NewJobService(jobs port.JobRepository, log *zap.Logger) *JobService {
	return &JobService{jobs: jobs, log: log}
}

// JobInput carries the caller-editable listing fields.
type JobInput struct {
	Title       string
	Description string
	Location    string
	Type        string
	Status      domain.JobStatus
}

func (in JobInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidJob)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidJob)
	}
	if strings.TrimSpace(in.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidJob)
	}
	if strings.TrimSpace(in.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidJob)
	}
	if in.Status != "" && !domain.ValidJobStatus(in.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidJob, in.Status)
	}
	return nil
}

// Create stores a new listing. Status defaults to Active.
func (s *JobService) Create(ctx context.Context, input JobInput) (*domain.Job, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.JobStatusActive
	}

	job := &domain.Job{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		Type:        strings.TrimSpace(input.Type),
		Status:      status,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.log.Info("job created", zap.Int64("job_id", job.ID), zap.String("title", job.Title))
	return job, nil
}

// Get returns a single listing by id.
func (s *JobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

// BrowseFilter narrows the public board view.
type BrowseFilter struct {
	Search   string
	Location string
	Type     string
	// IncludeAll exposes inactive and hidden listings to administrators.
	IncludeAll bool
}

// Browse lists jobs for the board. Public callers see only active listings;
// a non-empty search that produced hits bumps each hit's search counter.
func (s *JobService) Browse(ctx context.Context, filter BrowseFilter) ([]domain.Job, error) {
	repoFilter := port.JobFilter{
		Search:   strings.TrimSpace(filter.Search),
		Location: strings.TrimSpace(filter.Location),
		Type:     strings.TrimSpace(filter.Type),
	}
	if !filter.IncludeAll {
		repoFilter.Statuses = []domain.JobStatus{domain.JobStatusActive}
	}

	jobs, err := s.jobs.List(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	if repoFilter.Search != "" && len(jobs) > 0 {
		ids := make([]int64, 0, len(jobs))
		for _, job := range jobs {
			ids = append(ids, job.ID)
		}
		if err := s.jobs.IncrementSearches(ctx, ids); err != nil {
			// Counter updates never fail the read path.
			s.log.Warn("failed to bump search counters", zap.Error(err))
		}
	}

	return jobs, nil
}

// Update rewrites an existing listing.
func (s *JobService) Update(ctx context.Context, id int64, input JobInput) (*domain.Job, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	job.Title = strings.TrimSpace(input.Title)
	job.Description = strings.TrimSpace(input.Description)
	job.Location = strings.TrimSpace(input.Location)
	job.Type = strings.TrimSpace(input.Type)
	if input.Status != "" {
		job.Status = input.Status
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}

	return s.Get(ctx, id)
}

// Delete removes a listing permanently.
func (s *JobService) Delete(ctx context.Context, id int64) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("delete job: %w", err)
	}

	s.log.Info("job deleted", zap.Int64("job_id", id))
	return nil
}

// RecordClick bumps the click counter for a listing.
func (s *JobService) RecordClick(ctx context.Context, id int64) error {
	if err := s.jobs.IncrementClicks(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("record click: %w", err)
	}
	return nil
}

// Stats aggregates dashboard figures for administrators.
func (s *JobService) Stats(ctx context.Context) (*domain.BoardStats, error) {
	stats, err := s.jobs.Stats(ctx, statsTopN)
	if err != nil {
		return nil, fmt.Errorf("aggregate stats: %w", err)
	}
	return stats, nil
}
