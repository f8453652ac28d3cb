package port

import (
	"context"

	"github.com/abh6007/job-board-app/internal/core/domain"
)

// SocialLinkRepository persists contact-section links.
type SocialLinkRepository interface {
	Create(ctx context.Context, link *domain.SocialLink) error
	List(ctx context.Context, visibleOnly bool) ([]domain.SocialLink, error)
	Update(ctx context.Context, link *domain.SocialLink) error
	Delete(ctx context.Context, id int64) error
}

// AutomationLinkRepository persists admin dashboard shortcuts.
type AutomationLinkRepository interface {
	Create(ctx context.Context, link *domain.AutomationLink) error
	List(ctx context.Context, visibleOnly bool) ([]domain.AutomationLink, error)
	Update(ctx context.Context, link *domain.AutomationLink) error
	Delete(ctx context.Context, id int64) error
}

// AboutMeRepository persists the single about section.
type AboutMeRepository interface {
	// Get returns the stored section. Returns repository.ErrNotFound when the
	// section was never written.
	Get(ctx context.Context) (*domain.AboutMe, error)

	// Upsert replaces the section, creating it on first write.
	Upsert(ctx context.Context, about *domain.AboutMe) (*domain.AboutMe, error)
}

// DesignSettingsRepository persists the singleton site theme.
type DesignSettingsRepository interface {
	Get(ctx context.Context) (*domain.DesignSettings, error)
	Upsert(ctx context.Context, settings *domain.DesignSettings) (*domain.DesignSettings, error)
}
