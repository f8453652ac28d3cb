package postgres

import (
	"context"
	"fmt"

	squirrel "github.com/Masterminds/squirrel"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/core/port"
	"github.com/abh6007/job-board-app/internal/repository"
)

// SocialLinkRepository implements port.SocialLinkRepository backed by PostgreSQL.
type SocialLinkRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewSocialLinkRepository constructs a repository backed by any executor that satisfies pgExecutor.
func NewSocialLinkRepository(exec pgExecutor) *SocialLinkRepository {
	return &SocialLinkRepository{
		exec:    exec,
		builder: statementBuilder(),
	}
}

// Create inserts a social link and populates its generated identifier.
func (r *SocialLinkRepository) Create(ctx context.Context, link *domain.SocialLink) error {
	stmt, args, err := r.builder.Insert("social_links").
		Columns("platform", "url", "is_visible").
		Values(link.Platform, link.URL, link.IsVisible).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert social link sql: %w", err)
	}

	if err := r.exec.QueryRow(ctx, stmt, args...).Scan(&link.ID); err != nil {
		return fmt.Errorf("insert social link: %w", err)
	}

	return nil
}

// List returns social links, optionally restricted to visible ones.
func (r *SocialLinkRepository) List(ctx context.Context, visibleOnly bool) ([]domain.SocialLink, error) {
	query := r.builder.
		Select("id", "platform", "url", "is_visible").
		From("social_links").
		OrderBy("id ASC")

	if visibleOnly {
		query = query.Where(squirrel.Eq{"is_visible": true})
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list social links sql: %w", err)
	}

	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query social links: %w", err)
	}
	defer rows.Close()

	links := make([]domain.SocialLink, 0)
	for rows.Next() {
		var link domain.SocialLink
		if err := rows.Scan(&link.ID, &link.Platform, &link.URL, &link.IsVisible); err != nil {
			return nil, fmt.Errorf("scan social link: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate social links: %w", err)
	}

	return links, nil
}

// Update rewrites an existing social link.
func (r *SocialLinkRepository) Update(ctx context.Context, link *domain.SocialLink) error {
	stmt, args, err := r.builder.Update("social_links").
		Set("platform", link.Platform).
		Set("url", link.URL).
		Set("is_visible", link.IsVisible).
		Where(squirrel.Eq{"id": link.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update social link sql: %w", err)
	}

	ct, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("update social link: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a social link.
func (r *SocialLinkRepository) Delete(ctx context.Context, id int64) error {
	stmt, args, err := r.builder.Delete("social_links").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete social link sql: %w", err)
	}

	ct, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("delete social link: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// AutomationLinkRepository implements port.AutomationLinkRepository backed by PostgreSQL.
type AutomationLinkRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewAutomationLinkRepository constructs a repository backed by any executor that satisfies pgExecutor.
func NewAutomationLinkRepository(exec pgExecutor) *AutomationLinkRepository {
	return &AutomationLinkRepository{
		exec:    exec,
		builder: statementBuilder(),
	}
}

// Create inserts an automation link and populates its generated identifier.
func (r *AutomationLinkRepository) Create(ctx context.Context, link *domain.AutomationLink) error {
	stmt, args, err := r.builder.Insert("automation_links").
		Columns("name", "url", "is_visible").
		Values(link.Name, link.URL, link.IsVisible).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert automation link sql: %w", err)
	}

	if err := r.exec.QueryRow(ctx, stmt, args...).Scan(&link.ID); err != nil {
		return fmt.Errorf("insert automation link: %w", err)
	}

	return nil
}

// List returns automation links, optionally restricted to visible ones.
func (r *AutomationLinkRepository) List(ctx context.Context, visibleOnly bool) ([]domain.AutomationLink, error) {
	query := r.builder.
		Select("id", "name", "url", "is_visible").
		From("automation_links").
		OrderBy("id ASC")

	if visibleOnly {
		query = query.Where(squirrel.Eq{"is_visible": true})
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list automation links sql: %w", err)
	}

	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query automation links: %w", err)
	}
	defer rows.Close()

	links := make([]domain.AutomationLink, 0)
	for rows.Next() {
		var link domain.AutomationLink
		if err := rows.Scan(&link.ID, &link.Name, &link.URL, &link.IsVisible); err != nil {
			return nil, fmt.Errorf("scan automation link: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate automation links: %w", err)
	}

	return links, nil
}

// Update rewrites an existing automation link.
func (r *AutomationLinkRepository) Update(ctx context.Context, link *domain.AutomationLink) error {
	stmt, args, err := r.builder.Update("automation_links").
		Set("name", link.Name).
		Set("url", link.URL).
		Set("is_visible", link.IsVisible).
		Where(squirrel.Eq{"id": link.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update automation link sql: %w", err)
	}

	ct, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("update automation link: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes an automation link.
func (r *AutomationLinkRepository) Delete(ctx context.Context, id int64) error {
	stmt, args, err := r.builder.Delete("automation_links").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete automation link sql: %w", err)
	}

	ct, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("delete automation link: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

var (
	_ port.SocialLinkRepository     = (*SocialLinkRepository)(nil)
	_ port.AutomationLinkRepository = (*AutomationLinkRepository)(nil)
)
