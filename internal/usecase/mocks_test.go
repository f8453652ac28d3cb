package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/core/port"
	"github.com/abh6007/job-board-app/internal/repository"
)

type userRepoStub struct {
	mu      sync.Mutex
	byID    map[string]*domain.User
	byName  map[string]*domain.User
	updates []string
	err     error
}

func newUserRepoStub(users ...*domain.User) *userRepoStub {
	stub := &userRepoStub{
		byID:   make(map[string]*domain.User),
		byName: make(map[string]*domain.User),
	}
	for _, u := range users {
		stub.add(u)
	}
	return stub
}

func (s *userRepoStub) add(u *domain.User) {
	copied := *u
	s.byID[u.ID] = &copied
	s.byName[u.Username] = &copied
}

func (s *userRepoStub) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, exists := s.byName[user.Username]; exists {
		return repository.ErrConflict
	}
	s.add(user)
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *userRepoStub) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.byName[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *userRepoStub) UpdatePassword(_ context.Context, id string, passwordHash string, changedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	user, ok := s.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = changedAt
	s.updates = append(s.updates, id)
	return nil
}

func (s *userRepoStub) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID), nil
}

type sessionRepoStub struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	err      error
}

func newSessionRepoStub() *sessionRepoStub {
	return &sessionRepoStub{sessions: make(map[string]*domain.Session)}
}

func (s *sessionRepoStub) Create(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, exists := s.sessions[session.TokenHash]; exists {
		return repository.ErrConflict
	}
	copied := *session
	s.sessions[session.TokenHash] = &copied
	return nil
}

func (s *sessionRepoStub) GetByTokenHash(_ context.Context, tokenHash string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	session, ok := s.sessions[tokenHash]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *sessionRepoStub) Delete(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.sessions, tokenHash)
	return nil
}

func (s *sessionRepoStub) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	var purged int64
	for hash, session := range s.sessions {
		if session.ExpiresAt.Before(before) {
			delete(s.sessions, hash)
			purged++
		}
	}
	return purged, nil
}

type recoveryRepoStub struct {
	mu   sync.Mutex
	code *domain.RecoveryCode
	err  error
}

func (s *recoveryRepoStub) GetOrCreate(_ context.Context, candidate *domain.RecoveryCode) (*domain.RecoveryCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.code == nil {
		copied := *candidate
		s.code = &copied
	}
	copied := *s.code
	return &copied, nil
}

func (s *recoveryRepoStub) Get(_ context.Context) (*domain.RecoveryCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.code == nil {
		return nil, repository.ErrNotFound
	}
	copied := *s.code
	return &copied, nil
}

type sessionCacheStub struct {
	mu      sync.Mutex
	entries map[string]*domain.Session
	gets    int
	hits    int
	err     error
}

func newSessionCacheStub() *sessionCacheStub {
	return &sessionCacheStub{entries: make(map[string]*domain.Session)}
}

func (s *sessionCacheStub) Get(_ context.Context, tokenHash string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.err != nil {
		return nil, s.err
	}
	session, ok := s.entries[tokenHash]
	if !ok {
		return nil, repository.ErrNotFound
	}
	s.hits++
	copied := *session
	return &copied, nil
}

func (s *sessionCacheStub) Set(_ context.Context, session *domain.Session, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	copied := *session
	s.entries[session.TokenHash] = &copied
	return nil
}

func (s *sessionCacheStub) Delete(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.entries, tokenHash)
	return nil
}

var (
	_ port.UserRepository         = (*userRepoStub)(nil)
	_ port.SessionRepository      = (*sessionRepoStub)(nil)
	_ port.RecoveryCodeRepository = (*recoveryRepoStub)(nil)
	_ port.SessionCache           = (*sessionCacheStub)(nil)
)
