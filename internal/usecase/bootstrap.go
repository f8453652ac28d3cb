package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	uuid "github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/core/port"
	"github.com/abh6007/job-board-app/internal/infra/security"
	"github.com/abh6007/job-board-app/internal/repository"
)

const (
	bootstrapAdminUsername = "admin"
	bootstrapAdminEmail    = "admin@example.com"
	fallbackAdminPassword  = "admin123"
)

// BootstrapService prepares an empty database on startup: the admin account
// and, when enabled, the demo content shown on a fresh board.
type BootstrapService struct {
	users           port.UserRepository
	jobs            port.JobRepository
	socialLinks     port.SocialLinkRepository
	aboutMe         port.AboutMeRepository
	defaultPassword string
	seedDemoData    bool
	log             *zap.Logger
}

// NewBootstrapService constructs a BootstrapService instance.
func NewBootstrapService(
	users port.UserRepository,
	jobs port.JobRepository,
	socialLinks port.SocialLinkRepository,
	aboutMe port.AboutMeRepository,
	defaultPassword string,
	seedDemoData bool,
	log *zap.Logger,
) *BootstrapService {
	return &BootstrapService{
		users:           users,
		jobs:            jobs,
		socialLinks:     socialLinks,
		aboutMe:         aboutMe,
		defaultPassword: defaultPassword,
		seedDemoData:    seedDemoData,
		log:             log,
	}
}

// Run performs first-start initialization. It is idempotent: reruns against a
// populated database change nothing.
func (s *BootstrapService) Run(ctx context.Context) error {
	created, err := s.ensureAdmin(ctx)
	if err != nil {
		return err
	}

	if created && s.seedDemoData {
		if err := s.seed(ctx); err != nil {
			return err
		}
	}

	return nil
}

// ensureAdmin creates the admin account, but only when the store holds no
// accounts at all. A database with any existing users is left untouched.
func (s *BootstrapService) ensureAdmin(ctx context.Context) (bool, error) {
	count, err := s.users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count accounts: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	password := s.defaultPassword
	usingFallback := password == ""
	if usingFallback {
		password = fallbackAdminPassword
	}

	digest, err := security.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:           uuid.NewString(),
		Username:     bootstrapAdminUsername,
		Email:        bootstrapAdminEmail,
		FirstName:    "Admin",
		LastName:     "User",
		PasswordHash: digest,
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, admin); err != nil {
		// Another instance may have won the race; the account existing is the goal.
		if errors.Is(err, repository.ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("create admin account: %w", err)
	}

	if usingFallback || password == fallbackAdminPassword {
		s.log.Warn("admin account created with the default password, change it immediately",
			zap.String("username", bootstrapAdminUsername),
			zap.String("password", password),
		)
	} else {
		s.log.Info("admin account created with the configured password",
			zap.String("username", bootstrapAdminUsername),
		)
	}

	return true, nil
}

func (s *BootstrapService) seed(ctx context.Context) error {
	for _, job := range demoJobs() {
		j := job
		if err := s.jobs.Create(ctx, &j); err != nil {
			return fmt.Errorf("seed job %q: %w", job.Title, err)
		}
	}

	for _, link := range demoSocialLinks() {
		l := link
		if err := s.socialLinks.Create(ctx, &l); err != nil {
			return fmt.Errorf("seed social link %q: %w", link.Platform, err)
		}
	}

	if _, err := s.aboutMe.Upsert(ctx, &domain.AboutMe{Content: demoAboutText}); err != nil {
		return fmt.Errorf("seed about section: %w", err)
	}

	s.log.Info("seeded demo content",
		zap.Int("jobs", len(demoJobs())),
		zap.Int("social_links", len(demoSocialLinks())),
	)
	return nil
}

const demoAboutText = "Welcome to my job board! I curate remote and on-site openings " +
	"across engineering, design, and marketing, and share automation tools that make " +
	"the job hunt easier. Reach out through any of the contact links below."

func demoJobs() []domain.Job {
	return []domain.Job{
		{
			Title:       "Senior Backend Engineer",
			Description: "Design and run the services behind a high-traffic marketplace. Go or Java, Postgres, and a pragmatic approach to distributed systems.",
			Location:    "Remote",
			Type:        "Full-time",
			Status:      domain.JobStatusActive,
		},
		{
			Title:       "Product Designer",
			Description: "Own the end-to-end design process for our consumer app, from research through polished UI. Figma fluency expected.",
			Location:    "Berlin, Germany",
			Type:        "Full-time",
			Status:      domain.JobStatusActive,
		},
		{
			Title:       "Marketing Automation Specialist",
			Description: "Build and maintain campaign automations across email and social channels. Experience with workflow tools is a plus.",
			Location:    "Remote",
			Type:        "Contract",
			Status:      domain.JobStatusActive,
		},
		{
			Title:       "Junior Data Analyst",
			Description: "Support the analytics team with dashboards and ad-hoc reporting. SQL required, Python nice to have.",
			Location:    "London, UK",
			Type:        "Part-time",
			Status:      domain.JobStatusActive,
		},
	}
}

func demoSocialLinks() []domain.SocialLink {
	return []domain.SocialLink{
		{Platform: "LinkedIn", URL: "https://linkedin.com/in/jobboard-admin", IsVisible: true},
		{Platform: "Twitter", URL: "https://twitter.com/jobboard", IsVisible: true},
		{Platform: "Email", URL: "mailto:hello@jobboard.local", IsVisible: true},
	}
}
