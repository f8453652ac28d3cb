package domain

import "time"

// RecoveryCode is the single out-of-band secret usable to reset the admin
// password without knowing the current one. The deployment keeps at most one
// code system-wide; it is reusable and does not expire.
type RecoveryCode struct {
	Code      string
	CreatedAt time.Time
}
