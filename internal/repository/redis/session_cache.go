package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	red "github.com/redis/go-redis/v9"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/core/port"
	"github.com/abh6007/job-board-app/internal/repository"
)

const defaultSessionCachePrefix = "jobboard:session"

// SessionCache keeps recently resolved sessions in Redis so request
// authentication does not hit Postgres on every call. Entries are keyed by
// hashed token; the raw token never reaches Redis.
type SessionCache struct {
	client *red.Client
	prefix string
}

// NewSessionCache constructs a session cache helper.
func NewSessionCache(client *red.Client, keyPrefix string) *SessionCache {
	prefix := strings.TrimSpace(keyPrefix)
	if prefix == "" {
		prefix = defaultSessionCachePrefix
	}

	return &SessionCache{client: client, prefix: prefix}
}

type cachedSession struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get fetches the cached session, returning ErrNotFound on cache miss.
func (c *SessionCache) Get(ctx context.Context, tokenHash string) (*domain.Session, error) {
	key := c.key(tokenHash)
	if key == "" {
		return nil, fmt.Errorf("token hash is required")
	}

	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, red.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var entry cachedSession
	if err := json.Unmarshal([]byte(value), &entry); err != nil {
		return nil, fmt.Errorf("decode cached session: %w", err)
	}

	return &domain.Session{
		TokenHash: tokenHash,
		UserID:    entry.UserID,
		CreatedAt: entry.CreatedAt,
		ExpiresAt: entry.ExpiresAt,
	}, nil
}

// Set stores the session with the provided TTL. The TTL is capped to the
// session's remaining lifetime so a cached entry can never outlive the row.
func (c *SessionCache) Set(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	key := c.key(session.TokenHash)
	if key == "" {
		return fmt.Errorf("token hash is required")
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive")
	}

	if remaining := time.Until(session.ExpiresAt); remaining < ttl {
		ttl = remaining
	}
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(cachedSession{
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// Delete removes the cached session entry.
func (c *SessionCache) Delete(ctx context.Context, tokenHash string) error {
	key := c.key(tokenHash)
	if key == "" {
		return fmt.Errorf("token hash is required")
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

func (c *SessionCache) key(tokenHash string) string {
	trimmed := strings.TrimSpace(tokenHash)
	if trimmed == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.prefix, trimmed)
}

var _ port.SessionCache = (*SessionCache)(nil)
