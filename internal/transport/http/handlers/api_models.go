package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abh6007/job-board-app/internal/core/domain"
)

// ErrorResponse represents a generic error payload with trace ID for debugging.
type ErrorResponse struct {
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// NewErrorResponse creates an error response with trace ID from context
func NewErrorResponse(c *gin.Context, message string) ErrorResponse {
	traceID, _ := c.Get("trace_id")
	traceIDStr, _ := traceID.(string)

	return ErrorResponse{
		Message: message,
		TraceID: traceIDStr,
	}
}

// MessageResponse represents a simple message payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the account view returned by the API.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsAdmin   bool   `json:"isAdmin"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ClickResponse acknowledges a recorded listing click.
type ClickResponse struct {
	Success bool `json:"success"`
}

// ChangePasswordRequest captures a password change request body.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// RecoveryCodeResponse carries the credential recovery code to an administrator.
type RecoveryCodeResponse struct {
	RecoveryCode string    `json:"recoveryCode"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ResetPasswordRequest captures an out-of-band password reset payload.
type ResetPasswordRequest struct {
	Username     string `json:"username" binding:"required"`
	RecoveryCode string `json:"recoveryCode" binding:"required"`
	NewPassword  string `json:"newPassword" binding:"required"`
}

// JobRequest defines the payload for creating or updating a listing.
type JobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Status      string `json:"status"`
}

// JobResponse is the listing view returned by the API.
type JobResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	ClickCount  int64     `json:"clickCount"`
	SearchCount int64     `json:"searchCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// JobListResponse wraps the browse results.
type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Total int           `json:"total"`
}

// StatsResponse summarises board activity for the admin dashboard.
type StatsResponse struct {
	JobsPosted   int           `json:"jobsPosted"`
	JobsActive   int           `json:"jobsActive"`
	JobsInactive int           `json:"jobsInactive"`
	MostSearched []JobResponse `json:"mostSearched"`
	MostClicked  []JobResponse `json:"mostClicked"`
}

// SocialLinkRequest defines the payload for social link mutations.
type SocialLinkRequest struct {
	Platform  string `json:"platform" binding:"required"`
	URL       string `json:"url" binding:"required"`
	IsVisible *bool  `json:"isVisible"`
}

// SocialLinkResponse is the social link view returned by the API.
type SocialLinkResponse struct {
	ID        int64  `json:"id"`
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	IsVisible bool   `json:"isVisible"`
}

// AutomationLinkRequest defines the payload for automation link mutations.
type AutomationLinkRequest struct {
	Name      string `json:"name" binding:"required"`
	URL       string `json:"url" binding:"required"`
	IsVisible *bool  `json:"isVisible"`
}

// AutomationLinkResponse is the automation link view returned by the API.
type AutomationLinkResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	IsVisible bool   `json:"isVisible"`
}

// AboutMeRequest carries the profile text for updates.
type AboutMeRequest struct {
	Content string `json:"content"`
}

// AboutMeResponse is the profile section returned by the API.
type AboutMeResponse struct {
	Content string `json:"content"`
}

// DesignSettingsPayload is the theme document exchanged with the frontend.
type DesignSettingsPayload struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	ButtonColor     string `json:"buttonColor"`
	ButtonTextColor string `json:"buttonTextColor"`
	FontFamily      string `json:"fontFamily"`
	HeadingFont     string `json:"headingFont"`
	FontSize        string `json:"fontSize"`
	LayoutStyle     string `json:"layoutStyle"`
	BorderRadius    string `json:"borderRadius"`
}

// HealthResponse describes the service health payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadyResponse describes readiness probe results with dependency checks.
type ReadyResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// newUserResponse converts a domain user to an API view.
func newUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsAdmin:   user.IsAdmin,
	}
}

// newJobResponse converts a domain listing to an API view.
func newJobResponse(job domain.Job) JobResponse {
	return JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		Type:        job.Type,
		Status:      string(job.Status),
		ClickCount:  job.ClickCount,
		SearchCount: job.SearchCount,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}

func newJobResponses(jobs []domain.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, newJobResponse(job))
	}
	return out
}

func newSocialLinkResponse(link domain.SocialLink) SocialLinkResponse {
	return SocialLinkResponse{
		ID:        link.ID,
		Platform:  link.Platform,
		URL:       link.URL,
		IsVisible: link.IsVisible,
	}
}

func newAutomationLinkResponse(link domain.AutomationLink) AutomationLinkResponse {
	return AutomationLinkResponse{
		ID:        link.ID,
		Name:      link.Name,
		URL:       link.URL,
		IsVisible: link.IsVisible,
	}
}

func newDesignSettingsPayload(settings domain.DesignSettings) DesignSettingsPayload {
	return DesignSettingsPayload{
		PrimaryColor:    settings.PrimaryColor,
		SecondaryColor:  settings.SecondaryColor,
		BackgroundColor: settings.BackgroundColor,
		TextColor:       settings.TextColor,
		ButtonColor:     settings.ButtonColor,
		ButtonTextColor: settings.ButtonTextColor,
		FontFamily:      settings.FontFamily,
		HeadingFont:     settings.HeadingFont,
		FontSize:        settings.FontSize,
		LayoutStyle:     settings.LayoutStyle,
		BorderRadius:    settings.BorderRadius,
	}
}

func designSettingsFromPayload(payload DesignSettingsPayload) domain.DesignSettings {
	return domain.DesignSettings{
		PrimaryColor:    payload.PrimaryColor,
		SecondaryColor:  payload.SecondaryColor,
		BackgroundColor: payload.BackgroundColor,
		TextColor:       payload.TextColor,
		ButtonColor:     payload.ButtonColor,
		ButtonTextColor: payload.ButtonTextColor,
		FontFamily:      payload.FontFamily,
		HeadingFont:     payload.HeadingFont,
		FontSize:        payload.FontSize,
		LayoutStyle:     payload.LayoutStyle,
		BorderRadius:    payload.BorderRadius,
	}
}
