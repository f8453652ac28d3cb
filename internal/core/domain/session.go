package domain

import "time"

// Session represents a persisted login session presented via cookie.
// Only the SHA-256 hash of the opaque token is stored; the raw token is
// returned to the browser exactly once at creation.
type Session struct {
	TokenHash string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsActive reports whether the session is still valid at the supplied moment.
// Expired sessions are treated as absent even while physically present in
// storage (lazy expiration, no sliding window).
func (s Session) IsActive(at time.Time) bool {
	return s.ExpiresAt.After(at)
}
