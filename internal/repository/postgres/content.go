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

// AboutMeRepository implements port.AboutMeRepository backed by PostgreSQL.
// The about section is a singleton row with a fixed primary key.
type AboutMeRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewAboutMeRepository constructs a repository backed by any executor that satisfies pgExecutor.
func NewAboutMeRepository(exec pgExecutor) *AboutMeRepository {
	return &AboutMeRepository{
		exec:    exec,
		builder: statementBuilder(),
	}
}

// Get returns the stored about section.
func (r *AboutMeRepository) Get(ctx context.Context) (*domain.AboutMe, error) {
	stmt, args, err := r.builder.
		Select("id", "content").
		From("about_me").
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select about sql: %w", err)
	}

	var about domain.AboutMe
	if err := r.exec.QueryRow(ctx, stmt, args...).Scan(&about.ID, &about.Content); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan about: %w", err)
	}

	return &about, nil
}

// Upsert replaces the about section, creating it on first write.
func (r *AboutMeRepository) Upsert(ctx context.Context, about *domain.AboutMe) (*domain.AboutMe, error) {
	stmt, args, err := r.builder.Insert("about_me").
		Columns("id", "content").
		Values(1, about.Content).
		Suffix("ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content RETURNING id, content").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert about sql: %w", err)
	}

	var stored domain.AboutMe
	if err := r.exec.QueryRow(ctx, stmt, args...).Scan(&stored.ID, &stored.Content); err != nil {
		return nil, fmt.Errorf("upsert about: %w", err)
	}

	return &stored, nil
}

// DesignSettingsRepository implements port.DesignSettingsRepository backed by PostgreSQL.
type DesignSettingsRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewDesignSettingsRepository constructs a repository backed by any executor that satisfies pgExecutor.
func NewDesignSettingsRepository(exec pgExecutor) *DesignSettingsRepository {
	return &DesignSettingsRepository{
		exec:    exec,
		builder: statementBuilder(),
	}
}

const designSettingsColumns = "id, primary_color, secondary_color, background_color, text_color, button_color, button_text_color, font_family, heading_font, font_size, layout_style, border_radius, updated_at"

// Get returns the stored theme settings.
func (r *DesignSettingsRepository) Get(ctx context.Context) (*domain.DesignSettings, error) {
	stmt, args, err := r.builder.
		Select(
			"id",
			"primary_color",
			"secondary_color",
			"background_color",
			"text_color",
			"button_color",
			"button_text_color",
			"font_family",
			"heading_font",
			"font_size",
			"layout_style",
			"border_radius",
			"updated_at",
		).
		From("design_settings").
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select design settings sql: %w", err)
	}

	settings, err := scanDesignSettings(r.exec.QueryRow(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("scan design settings: %w", err)
	}

	return settings, nil
}

// Upsert replaces the theme settings, creating the row on first write.
func (r *DesignSettingsRepository) Upsert(ctx context.Context, settings *domain.DesignSettings) (*domain.DesignSettings, error) {
	stmt, args, err := r.builder.Insert("design_settings").
		Columns(
			"id",
			"primary_color",
			"secondary_color",
			"background_color",
			"text_color",
			"button_color",
			"button_text_color",
			"font_family",
			"heading_font",
			"font_size",
			"layout_style",
			"border_radius",
			"updated_at",
		).
		Values(
			1,
			settings.PrimaryColor,
			settings.SecondaryColor,
			settings.BackgroundColor,
			settings.TextColor,
			settings.ButtonColor,
			settings.ButtonTextColor,
			settings.FontFamily,
			settings.HeadingFont,
			settings.FontSize,
			settings.LayoutStyle,
			settings.BorderRadius,
			squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			primary_color = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			background_color = EXCLUDED.background_color,
			text_color = EXCLUDED.text_color,
			button_color = EXCLUDED.button_color,
			button_text_color = EXCLUDED.button_text_color,
			font_family = EXCLUDED.font_family,
			heading_font = EXCLUDED.heading_font,
			font_size = EXCLUDED.font_size,
			layout_style = EXCLUDED.layout_style,
			border_radius = EXCLUDED.border_radius,
			updated_at = NOW()
			RETURNING ` + designSettingsColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert design settings sql: %w", err)
	}

	stored, err := scanDesignSettings(r.exec.QueryRow(ctx, stmt, args...))
	if err != nil {
		return nil, fmt.Errorf("upsert design settings: %w", err)
	}

	return stored, nil
}

func scanDesignSettings(row pgx.Row) (*domain.DesignSettings, error) {
	var settings domain.DesignSettings
	if err := row.Scan(
		&settings.ID,
		&settings.PrimaryColor,
		&settings.SecondaryColor,
		&settings.BackgroundColor,
		&settings.TextColor,
		&settings.ButtonColor,
		&settings.ButtonTextColor,
		&settings.FontFamily,
		&settings.HeadingFont,
		&settings.FontSize,
		&settings.LayoutStyle,
		&settings.BorderRadius,
		&settings.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &settings, nil
}

var (
	_ port.AboutMeRepository        = (*AboutMeRepository)(nil)
	_ port.DesignSettingsRepository = (*DesignSettingsRepository)(nil)
)
