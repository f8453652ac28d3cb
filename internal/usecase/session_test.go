package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/abh6007/job-board-app/internal/infra/security"
)

func TestSessionServiceCreateAndResolve(t *testing.T) {
	repo := newSessionRepoStub()
	svc := NewSessionService(repo, nil, time.Hour, 0, zaptest.NewLogger(t))

	token, session, err := svc.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a raw token")
	}
	if session.TokenHash == token {
		t.Fatal("stored hash must differ from the raw token")
	}
	if session.TokenHash != security.HashToken(token) {
		t.Fatal("stored hash must be the SHA-256 of the raw token")
	}

	resolved, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if resolved.UserID != "user-1" {
		t.Fatalf("expected user-1, got %s", resolved.UserID)
	}
}

func TestSessionServiceResolveUnknownToken(t *testing.T) {
	repo := newSessionRepoStub()
	svc := NewSessionService(repo, nil, time.Hour, 0, zaptest.NewLogger(t))

	if _, err := svc.Resolve(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Resolve(context.Background(), ""); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for empty token, got %v", err)
	}
}

func TestSessionServiceResolveExpired(t *testing.T) {
	repo := newSessionRepoStub()
	svc := NewSessionService(repo, nil, time.Hour, 0, zaptest.NewLogger(t))

	token, session, err := svc.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Backdate the stored expiry to the past.
	repo.mu.Lock()
	repo.sessions[session.TokenHash].ExpiresAt = time.Now().UTC().Add(-time.Minute)
	repo.mu.Unlock()

	if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	// The expired row is removed lazily; a second resolve reports not found.
	if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after lazy removal, got %v", err)
	}
}

func TestSessionServiceDestroyIdempotent(t *testing.T) {
	repo := newSessionRepoStub()
	svc := NewSessionService(repo, nil, time.Hour, 0, zaptest.NewLogger(t))

	token, _, err := svc.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Destroy(context.Background(), token); err != nil {
		t.Fatalf("Destroy returned error: %v", err)
	}
	if err := svc.Destroy(context.Background(), token); err != nil {
		t.Fatalf("second Destroy must succeed, got %v", err)
	}

	if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after destroy, got %v", err)
	}
}

func TestSessionServiceCacheReadThrough(t *testing.T) {
	repo := newSessionRepoStub()
	cache := newSessionCacheStub()
	svc := NewSessionService(repo, cache, time.Hour, 10*time.Minute, zaptest.NewLogger(t))

	token, _, err := svc.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), token); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if cache.hits == 0 {
		t.Fatal("expected resolve to hit the cache after create")
	}
}

func TestSessionServiceCacheFailureDegrades(t *testing.T) {
	repo := newSessionRepoStub()
	cache := newSessionCacheStub()
	cache.err = errors.New("redis down")
	svc := NewSessionService(repo, cache, time.Hour, 10*time.Minute, zaptest.NewLogger(t))

	token, _, err := svc.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create must succeed despite cache failure: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), token); err != nil {
		t.Fatalf("Resolve must fall back to the store: %v", err)
	}
}

func TestSessionServicePurgeExpired(t *testing.T) {
	repo := newSessionRepoStub()
	svc := NewSessionService(repo, nil, time.Hour, 0, zaptest.NewLogger(t))

	_, live, err := svc.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	_, stale, err := svc.Create(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	repo.mu.Lock()
	repo.sessions[stale.TokenHash].ExpiresAt = time.Now().UTC().Add(-time.Hour)
	repo.mu.Unlock()

	purged, err := svc.PurgeExpired(context.Background())
	if err != nil {
		t.Fatalf("PurgeExpired returned error: %v", err)
	}
	if purged != 1 {
		t.Fatalf("expected 1 purged session, got %d", purged)
	}

	repo.mu.Lock()
	_, liveRemains := repo.sessions[live.TokenHash]
	repo.mu.Unlock()
	if !liveRemains {
		t.Fatal("live session must survive the purge")
	}
}
