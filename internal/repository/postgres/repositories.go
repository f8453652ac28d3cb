package postgres

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories groups concrete PostgreSQL repository implementations.
type Repositories struct {
	Users           *UserRepository
	Sessions        *SessionRepository
	RecoveryCodes   *RecoveryCodeRepository
	Jobs            *JobRepository
	SocialLinks     *SocialLinkRepository
	AutomationLinks *AutomationLinkRepository
	AboutMe         *AboutMeRepository
	DesignSettings  *DesignSettingsRepository
}

// NewRepositories wires all repositories backed by the provided pool.
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(pool),
		Sessions:        NewSessionRepository(pool),
		RecoveryCodes:   NewRecoveryCodeRepository(pool),
		Jobs:            NewJobRepository(pool),
		SocialLinks:     NewSocialLinkRepository(pool),
		AutomationLinks: NewAutomationLinkRepository(pool),
		AboutMe:         NewAboutMeRepository(pool),
		DesignSettings:  NewDesignSettingsRepository(pool),
	}
}
