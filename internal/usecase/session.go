package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/core/port"
	"github.com/abh6007/job-board-app/internal/infra/security"
	"github.com/abh6007/job-board-app/internal/repository"
)

var (
	// ErrSessionNotFound indicates the presented token resolves to no session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates the session exists but its lifetime elapsed.
	ErrSessionExpired = errors.New("session expired")
)

const sessionTokenBytes = 32

// SessionService owns the login session lifecycle: opaque token issuance,
// resolution, destruction, and expired-row purging. An optional cache fronts
// the session store; cache failures degrade to direct reads.
type SessionService struct {
	sessions port.SessionRepository
	cache    port.SessionCache
	ttl      time.Duration
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewSessionService constructs a SessionService. The cache may be nil.
func NewSessionService(sessions port.SessionRepository, cache port.SessionCache, ttl, cacheTTL time.Duration, logger *zap.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &SessionService{
		sessions: sessions,
		cache:    cache,
		ttl:      ttl,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// TTL reports the configured session lifetime, used to size the cookie max-age.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Create opens a session for the user and returns the raw token exactly once.
// Only the token's hash is persisted.
func (s *SessionService) Create(ctx context.Context, userID string) (string, *domain.Session, error) {
	if userID == "" {
		return "", nil, fmt.Errorf("user id is required")
	}

	token, err := security.GenerateSecureToken(sessionTokenBytes)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	now := time.Now().UTC()
	session := &domain.Session{
		TokenHash: security.HashToken(token),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("persist session: %w", err)
	}

	s.cacheSet(ctx, session)

	return token, session, nil
}

// Resolve maps a raw token to its active session. Expired sessions are
// reported as ErrSessionExpired and removed lazily.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	tokenHash := security.HashToken(token)

	session := s.cacheGet(ctx, tokenHash)
	if session == nil {
		stored, err := s.sessions.GetByTokenHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrSessionNotFound
			}
			return nil, fmt.Errorf("lookup session: %w", err)
		}
		session = stored
		s.cacheSet(ctx, session)
	}

	if !session.IsActive(time.Now().UTC()) {
		s.cacheDelete(ctx, tokenHash)
		if err := s.sessions.Delete(ctx, tokenHash); err != nil {
			s.logger.Warn("failed to remove expired session", zap.Error(err))
		}
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Destroy removes the session for the supplied raw token. Destroying an
// absent or expired session is not an error, so logout stays idempotent.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	tokenHash := security.HashToken(token)
	s.cacheDelete(ctx, tokenHash)

	if err := s.sessions.Delete(ctx, tokenHash); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired removes sessions whose expiry moment already passed.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	purged, err := s.sessions.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", err)
	}

	if purged > 0 {
		s.logger.Info("purged expired sessions", zap.Int64("count", purged))
	}
	return purged, nil
}

func (s *SessionService) cacheGet(ctx context.Context, tokenHash string) *domain.Session {
	if s.cache == nil {
		return nil
	}
	session, err := s.cache.Get(ctx, tokenHash)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("session cache read failed", zap.Error(err))
		}
		return nil
	}
	return session
}

func (s *SessionService) cacheSet(ctx context.Context, session *domain.Session) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, session, s.cacheTTL); err != nil {
		s.logger.Warn("session cache write failed", zap.Error(err))
	}
}

func (s *SessionService) cacheDelete(ctx context.Context, tokenHash string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, tokenHash); err != nil {
		s.logger.Warn("session cache delete failed", zap.Error(err))
	}
}
