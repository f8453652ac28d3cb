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

// JobRepository implements port.JobRepository backed by PostgreSQL.
type JobRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewJobRepository constructs a repository backed by any executor that satisfies pgExecutor.
func NewJobRepository(exec pgExecutor) *JobRepository {
	return &JobRepository{
		exec:    exec,
		builder: statementBuilder(),
	}
}

// Create inserts a new job listing and populates the generated identifier and timestamps.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	stmt, args, err := r.builder.Insert("jobs").
		Columns("title", "description", "location", "type", "status").
		Values(job.Title, job.Description, job.Location, job.Type, job.Status).
		Suffix("RETURNING id, click_count, search_count, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert job sql: %w", err)
	}

	if err := r.exec.QueryRow(ctx, stmt, args...).Scan(
		&job.ID,
		&job.ClickCount,
		&job.SearchCount,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}

	return nil
}

// GetByID retrieves a job by identifier.
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	stmt, args, err := r.selectJobs().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select job sql: %w", err)
	}

	job, err := scanJob(r.exec.QueryRow(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("scan job: %w", err)
	}

	return job, nil
}

// List returns jobs matching the filter ordered newest first.
func (r *JobRepository) List(ctx context.Context, filter port.JobFilter) ([]domain.Job, error) {
	query := r.selectJobs().OrderBy("created_at DESC")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"location": pattern},
		})
	}
	if filter.Location != "" {
		query = query.Where(squirrel.ILike{"location": "%" + filter.Location + "%"})
	}
	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
	}
	if len(filter.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": filter.Statuses})
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list jobs sql: %w", err)
	}

	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}

	return jobs, nil
}

// Update rewrites the mutable fields of an existing listing.
func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	stmt, args, err := r.builder.Update("jobs").
		Set("title", job.Title).
		Set("description", job.Description).
		Set("location", job.Location).
		Set("type", job.Type).
		Set("status", job.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": job.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update job sql: %w", err)
	}

	ct, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a listing permanently.
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	stmt, args, err := r.builder.Delete("jobs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete job sql: %w", err)
	}

	ct, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// IncrementClicks bumps click_count atomically in storage.
func (r *JobRepository) IncrementClicks(ctx context.Context, id int64) error {
	stmt, args, err := r.builder.Update("jobs").
		Set("click_count", squirrel.Expr("click_count + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build increment clicks sql: %w", err)
	}

	ct, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("increment clicks: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// IncrementSearches bumps search_count for every supplied job id.
func (r *JobRepository) IncrementSearches(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	stmt, args, err := r.builder.Update("jobs").
		Set("search_count", squirrel.Expr("search_count + 1")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build increment searches sql: %w", err)
	}

	if _, err := r.exec.Exec(ctx, stmt, args...); err != nil {
		return fmt.Errorf("increment searches: %w", err)
	}

	return nil
}

// Stats aggregates listing counts and the most searched and clicked jobs.
func (r *JobRepository) Stats(ctx context.Context, topN uint64) (*domain.BoardStats, error) {
	stats := &domain.BoardStats{}

	countStmt, countArgs, err := r.builder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'Active')",
		"COUNT(*) FILTER (WHERE status = 'Inactive')",
	).From("jobs").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build job counts sql: %w", err)
	}

	if err := r.exec.QueryRow(ctx, countStmt, countArgs...).Scan(
		&stats.JobsPosted,
		&stats.JobsActive,
		&stats.JobsInactive,
	); err != nil {
		return nil, fmt.Errorf("scan job counts: %w", err)
	}

	mostSearched, err := r.topJobs(ctx, "search_count", topN)
	if err != nil {
		return nil, err
	}
	stats.MostSearched = mostSearched

	mostClicked, err := r.topJobs(ctx, "click_count", topN)
	if err != nil {
		return nil, err
	}
	stats.MostClicked = mostClicked

	return stats, nil
}

func (r *JobRepository) topJobs(ctx context.Context, orderColumn string, limit uint64) ([]domain.Job, error) {
	stmt, args, err := r.selectJobs().
		OrderBy(orderColumn + " DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build top jobs sql: %w", err)
	}

	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query top jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0, limit)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan top job: %w", err)
		}
		jobs = append(jobs, *job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top jobs: %w", err)
	}

	return jobs, nil
}

func (r *JobRepository) selectJobs() squirrel.SelectBuilder {
	return r.builder.Select(
		"id",
		"title",
		"description",
		"location",
		"type",
		"status",
		"click_count",
		"search_count",
		"created_at",
		"updated_at",
	).From("jobs")
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	if err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Location,
		&job.Type,
		&job.Status,
		&job.ClickCount,
		&job.SearchCount,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &job, nil
}

var _ port.JobRepository = (*JobRepository)(nil)
