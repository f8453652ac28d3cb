package domain

import "time"

// JobStatus enumerates listing visibility states.
type JobStatus string

const (
	JobStatusActive   JobStatus = "Active"
	JobStatusInactive JobStatus = "Inactive"
	JobStatusHidden   JobStatus = "Hidden"
)

// ValidJobStatus reports whether the supplied value is a known status.
func ValidJobStatus(status JobStatus) bool {
	switch status {
	case JobStatusActive, JobStatusInactive, JobStatusHidden:
		return true
	default:
		return false
	}
}

// Job mirrors the persisted representation in the jobs table.
type Job struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Type        string
	Status      JobStatus
	ClickCount  int64
	SearchCount int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BoardStats summarizes listing activity for the admin dashboard.
type BoardStats struct {
	JobsPosted   int
	JobsActive   int
	JobsInactive int
	MostSearched []Job
	MostClicked  []Job
}
