package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/core/port"
	"github.com/abh6007/job-board-app/internal/infra/logger"
	"github.com/abh6007/job-board-app/internal/infra/security"
	"github.com/abh6007/job-board-app/internal/repository"
)

var (
	// ErrInvalidCredentials indicates the provided username or password are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordMismatch indicates the supplied current password did not verify.
	ErrPasswordMismatch = errors.New("current password is incorrect")
	// ErrWeakPassword indicates the candidate password violates the policy.
	ErrWeakPassword = errors.New("password does not meet policy")
	// ErrUserNotFound indicates the referenced account does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// AuthService coordinates credential verification and password changes.
type AuthService struct {
	users     port.UserRepository
	sessions  *SessionService
	validator *security.PasswordValidator
	log       *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(users port.UserRepository, sessions *SessionService, validator *security.PasswordValidator, log *zap.Logger) *AuthService {
	if validator == nil {
		validator = security.DefaultPasswordValidator()
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		validator: validator,
		log:       log,
	}
}

// Login verifies credentials and opens a session. Unknown usernames burn a
// fallback password verification so the failure duration does not reveal
// whether the account exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			security.VerifyAgainstFallback(password)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, _, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	s.log.Info("user logged in", zap.String("username", user.Username))

	sanitized := user.Sanitized()
	return token, &sanitized, nil
}

// Identify resolves a session token to its owning user.
func (s *AuthService) Identify(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Account removed while the session row lingered; treat as signed out.
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("lookup session user: %w", err)
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// ChangePassword verifies the current credential before storing a new digest.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	if err := s.validator.Validate(newPassword); err != nil {
		return fmt.Errorf("%w: %s", ErrWeakPassword, err.Error())
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	ok, err := security.VerifyPassword(currentPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("verify current password: %w", err)
	}
	if !ok {
		return ErrPasswordMismatch
	}

	digest, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, digest, time.Now().UTC()); err != nil {
		return fmt.Errorf("store new password: %w", err)
	}

	s.log.Info("password changed",
		zap.String("username", user.Username),
		zap.String("email", logger.MaskEmail(user.Email)),
	)
	return nil
}
