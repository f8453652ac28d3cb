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
	// ErrLinkNotFound indicates the referenced link does not exist.
	ErrLinkNotFound = errors.New("link not found")
	// ErrInvalidLink indicates the link payload failed validation.
	ErrInvalidLink = errors.New("invalid link")
)

// ContentService owns the site content surrounding the job board: contact
// links, automation shortcuts, the about section, and the theme.
type ContentService struct {
	socialLinks     port.SocialLinkRepository
	automationLinks port.AutomationLinkRepository
	aboutMe         port.AboutMeRepository
	designSettings  port.DesignSettingsRepository
	log             *zap.Logger
}

// NewContentService constructs a ContentService instance.
func NewContentService(
	socialLinks port.SocialLinkRepository,
	automationLinks port.AutomationLinkRepository,
	aboutMe port.AboutMeRepository,
	designSettings port.DesignSettingsRepository,
	log *zap.Logger,
) *ContentService {
	return &ContentService{
		socialLinks:     socialLinks,
		automationLinks: automationLinks,
		aboutMe:         aboutMe,
		designSettings:  designSettings,
		log:             log,
	}
}

// SocialLinkInput carries the caller-editable social link fields.
type SocialLinkInput struct {
	Platform  string
	URL       string
	IsVisible *bool
}

// CreateSocialLink stores a new contact link. Visibility defaults to true.
func (s *ContentService) CreateSocialLink(ctx context.Context, input SocialLinkInput) (*domain.SocialLink, error) {
	platform := strings.TrimSpace(input.Platform)
	url := strings.TrimSpace(input.URL)
	if platform == "" || url == "" {
		return nil, fmt.Errorf("%w: platform and url are required", ErrInvalidLink)
	}

	link := &domain.SocialLink{
		Platform:  platform,
		URL:       url,
		IsVisible: true,
	}
	if input.IsVisible != nil {
		link.IsVisible = *input.IsVisible
	}

	if err := s.socialLinks.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("create social link: %w", err)
	}

	return link, nil
}

// ListSocialLinks returns contact links; public callers see visible ones only.
func (s *ContentService) ListSocialLinks(ctx context.Context, visibleOnly bool) ([]domain.SocialLink, error) {
	links, err := s.socialLinks.List(ctx, visibleOnly)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	return links, nil
}

// UpdateSocialLink rewrites an existing contact link.
func (s *ContentService) UpdateSocialLink(ctx context.Context, id int64, input SocialLinkInput) (*domain.SocialLink, error) {
	platform := strings.TrimSpace(input.Platform)
	url := strings.TrimSpace(input.URL)
	if platform == "" || url == "" {
		return nil, fmt.Errorf("%w: platform and url are required", ErrInvalidLink)
	}

	link := &domain.SocialLink{
		ID:        id,
		Platform:  platform,
		URL:       url,
		IsVisible: true,
	}
	if input.IsVisible != nil {
		link.IsVisible = *input.IsVisible
	}

	if err := s.socialLinks.Update(ctx, link); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("update social link: %w", err)
	}

	return link, nil
}

// DeleteSocialLink removes a contact link.
func (s *ContentService) DeleteSocialLink(ctx context.Context, id int64) error {
	if err := s.socialLinks.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("delete social link: %w", err)
	}
	return nil
}

// AutomationLinkInput carries the caller-editable automation link fields.
type AutomationLinkInput struct {
	Name      string
	URL       string
	IsVisible *bool
}

// CreateAutomationLink stores a new dashboard shortcut. Visibility defaults to true.
func (s *ContentService) CreateAutomationLink(ctx context.Context, input AutomationLinkInput) (*domain.AutomationLink, error) {
	name := strings.TrimSpace(input.Name)
	url := strings.TrimSpace(input.URL)
	if name == "" || url == "" {
		return nil, fmt.Errorf("%w: name and url are required", ErrInvalidLink)
	}

	link := &domain.AutomationLink{
		Name:      name,
		URL:       url,
		IsVisible: true,
	}
	if input.IsVisible != nil {
		link.IsVisible = *input.IsVisible
	}

	if err := s.automationLinks.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("create automation link: %w", err)
	}

	return link, nil
}

// ListAutomationLinks returns dashboard shortcuts.
func (s *ContentService) ListAutomationLinks(ctx context.Context, visibleOnly bool) ([]domain.AutomationLink, error) {
	links, err := s.automationLinks.List(ctx, visibleOnly)
	if err != nil {
		return nil, fmt.Errorf("list automation links: %w", err)
	}
	return links, nil
}

// UpdateAutomationLink rewrites an existing dashboard shortcut.
func (s *ContentService) UpdateAutomationLink(ctx context.Context, id int64, input AutomationLinkInput) (*domain.AutomationLink, error) {
	name := strings.TrimSpace(input.Name)
	url := strings.TrimSpace(input.URL)
	if name == "" || url == "" {
		return nil, fmt.Errorf("%w: name and url are required", ErrInvalidLink)
	}

	link := &domain.AutomationLink{
		ID:        id,
		Name:      name,
		URL:       url,
		IsVisible: true,
	}
	if input.IsVisible != nil {
		link.IsVisible = *input.IsVisible
	}

	if err := s.automationLinks.Update(ctx, link); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("update automation link: %w", err)
	}

	return link, nil
}

// DeleteAutomationLink removes a dashboard shortcut.
func (s *ContentService) DeleteAutomationLink(ctx context.Context, id int64) error {
	if err := s.automationLinks.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("delete automation link: %w", err)
	}
	return nil
}

// GetAboutMe returns the about section, or an empty one when never written.
func (s *ContentService) GetAboutMe(ctx context.Context) (*domain.AboutMe, error) {
	about, err := s.aboutMe.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.AboutMe{ID: 1, Content: ""}, nil
		}
		return nil, fmt.Errorf("get about section: %w", err)
	}
	return about, nil
}

// UpdateAboutMe replaces the about section.
func (s *ContentService) UpdateAboutMe(ctx context.Context, content string) (*domain.AboutMe, error) {
	about, err := s.aboutMe.Upsert(ctx, &domain.AboutMe{Content: content})
	if err != nil {
		return nil, fmt.Errorf("update about section: %w", err)
	}
	return about, nil
}

// GetDesignSettings returns the site theme, falling back to the defaults
// until an admin customizes it.
func (s *ContentService) GetDesignSettings(ctx context.Context) (*domain.DesignSettings, error) {
	settings, err := s.designSettings.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			defaults := domain.DefaultDesignSettings()
			defaults.ID = 1
			return &defaults, nil
		}
		return nil, fmt.Errorf("get design settings: %w", err)
	}
	return settings, nil
}

// UpdateDesignSettings replaces the site theme.
func (s *ContentService) UpdateDesignSettings(ctx context.Context, settings domain.DesignSettings) (*domain.DesignSettings, error) {
	stored, err := s.designSettings.Upsert(ctx, &settings)
	if err != nil {
		return nil, fmt.Errorf("update design settings: %w", err)
	}

	s.log.Info("design settings updated")
	return stored, nil
}
