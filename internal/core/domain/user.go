package domain

import "time"

// User mirrors the persisted representation in the users table.
// PasswordHash carries the encoded argon2id digest and must never be
// serialized or logged; services blank it before returning users upward.
type User struct {
	ID           string
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy of the user with the credential digest cleared.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
