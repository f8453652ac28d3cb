package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/abh6007/job-board-app/internal/core/domain"
)

func newContentFixture(t *testing.T) *ContentService {
	t.Helper()
	return NewContentService(
		newSocialLinkRepoStub(),
		newAutomationLinkRepoStub(),
		&aboutMeRepoStub{},
		&designSettingsRepoStub{},
		zaptest.NewLogger(t),
	)
}

func TestContentServiceSocialLinks(t *testing.T) {
	svc := newContentFixture(t)

	hidden := false
	created, err := svc.CreateSocialLink(context.Background(), SocialLinkInput{Platform: "LinkedIn", URL: "https://linkedin.com/in/x"})
	if err != nil {
		t.Fatalf("CreateSocialLink returned error: %v", err)
	}
	if !created.IsVisible {
		t.Fatal("visibility must default to true")
	}

	if _, err := svc.CreateSocialLink(context.Background(), SocialLinkInput{Platform: "Twitter", URL: "https://twitter.com/x", IsVisible: &hidden}); err != nil {
		t.Fatalf("CreateSocialLink returned error: %v", err)
	}

	visible, err := svc.ListSocialLinks(context.Background(), true)
	if err != nil {
		t.Fatalf("ListSocialLinks returned error: %v", err)
	}
	if len(visible) != 1 {
		t.Fatalf("expected 1 visible link, got %d", len(visible))
	}

	all, err := svc.ListSocialLinks(context.Background(), false)
	if err != nil {
		t.Fatalf("ListSocialLinks returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 links total, got %d", len(all))
	}

	if _, err := svc.CreateSocialLink(context.Background(), SocialLinkInput{Platform: "", URL: "x"}); !errors.Is(err, ErrInvalidLink) {
		t.Fatalf("expected ErrInvalidLink, got %v", err)
	}

	if _, err := svc.UpdateSocialLink(context.Background(), 999, SocialLinkInput{Platform: "P", URL: "U"}); !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound, got %v", err)
	}

	if err := svc.DeleteSocialLink(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteSocialLink returned error: %v", err)
	}
	if err := svc.DeleteSocialLink(context.Background(), created.ID); !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound on repeat delete, got %v", err)
	}
}

func TestContentServiceAutomationLinks(t *testing.T) {
	svc := newContentFixture(t)

	link, err := svc.CreateAutomationLink(context.Background(), AutomationLinkInput{Name: "Mail blaster", URL: "https://tools.example.com/mail"})
	if err != nil {
		t.Fatalf("CreateAutomationLink returned error: %v", err)
	}

	updated, err := svc.UpdateAutomationLink(context.Background(), link.ID, AutomationLinkInput{Name: "Mailer", URL: link.URL})
	if err != nil {
		t.Fatalf("UpdateAutomationLink returned error: %v", err)
	}
	if updated.Name != "Mailer" {
		t.Fatalf("unexpected name: %s", updated.Name)
	}
}

func TestContentServiceAboutMe(t *testing.T) {
	svc := newContentFixture(t)

	about, err := svc.GetAboutMe(context.Background())
	if err != nil {
		t.Fatalf("GetAboutMe returned error: %v", err)
	}
	if about.Content != "" {
		t.Fatal("expected empty section before first write")
	}

	stored, err := svc.UpdateAboutMe(context.Background(), "Hello there")
	if err != nil {
		t.Fatalf("UpdateAboutMe returned error: %v", err)
	}
	if stored.Content != "Hello there" {
		t.Fatalf("unexpected content: %s", stored.Content)
	}

	again, err := svc.GetAboutMe(context.Background())
	if err != nil {
		t.Fatalf("GetAboutMe returned error: %v", err)
	}
	if again.Content != "Hello there" {
		t.Fatalf("unexpected content after write: %s", again.Content)
	}
}

func TestContentServiceDesignSettings(t *testing.T) {
	svc := newContentFixture(t)

	settings, err := svc.GetDesignSettings(context.Background())
	if err != nil {
		t.Fatalf("GetDesignSettings returned error: %v", err)
	}
	defaults := domain.DefaultDesignSettings()
	if settings.PrimaryColor != defaults.PrimaryColor {
		t.Fatalf("expected default theme before first write, got %+v", settings)
	}

	custom := *settings
	custom.PrimaryColor = "#000000"
	stored, err := svc.UpdateDesignSettings(context.Background(), custom)
	if err != nil {
		t.Fatalf("UpdateDesignSettings returned error: %v", err)
	}
	if stored.PrimaryColor != "#000000" {
		t.Fatalf("unexpected primary color: %s", stored.PrimaryColor)
	}
}
