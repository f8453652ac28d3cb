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

// ErrRecoveryFailed covers every reset failure caused by caller input. The
// single sentinel keeps responses from distinguishing a bad code from an
// unknown username.
var ErrRecoveryFailed = errors.New("recovery failed")

// RecoveryService issues and consumes the system-wide recovery code that
// resets a password without the current one.
type RecoveryService struct {
	codes     port.RecoveryCodeRepository
	users     port.UserRepository
	validator *security.PasswordValidator
	log       *zap.Logger
}

// NewRecoveryService constructs a RecoveryService instance.
func NewRecoveryService(codes port.RecoveryCodeRepository, users port.UserRepository, validator *security.PasswordValidator, log *zap.Logger) *RecoveryService {
	if validator == nil {
		validator = security.DefaultPasswordValidator()
	}
	return &RecoveryService{
		codes:     codes,
		users:     users,
		validator: validator,
		log:       log,
	}
}

// GetOrCreateCode returns the current recovery code, generating and storing
// one on first request. Concurrent first requests all observe the same code.
func (s *RecoveryService) GetOrCreateCode(ctx context.Context) (*domain.RecoveryCode, error) {
	candidateCode, err := security.GenerateRecoveryCode()
	if err != nil {
		return nil, fmt.Errorf("generate recovery code: %w", err)
	}

	candidate := &domain.RecoveryCode{
		Code:      candidateCode,
		CreatedAt: time.Now().UTC(),
	}

	code, err := s.codes.GetOrCreate(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("store recovery code: %w", err)
	}

	return code, nil
}

// ResetPassword replaces the password of the named account when the supplied
// code matches the stored one. Both lookups always run before the decision so
// the failure path does not reveal which input was wrong.
func (s *RecoveryService) ResetPassword(ctx context.Context, username, code, newPassword string) error {
	if err := s.validator.Validate(newPassword); err != nil {
		return fmt.Errorf("%w: %s", ErrWeakPassword, err.Error())
	}

	stored, codeErr := s.codes.Get(ctx)
	if codeErr != nil && !errors.Is(codeErr, repository.ErrNotFound) {
		return fmt.Errorf("lookup recovery code: %w", codeErr)
	}

	user, userErr := s.users.GetByUsername(ctx, username)
	if userErr != nil && !errors.Is(userErr, repository.ErrNotFound) {
		return fmt.Errorf("lookup user: %w", userErr)
	}

	codeMatches := stored != nil && security.ConstantTimeEquals(code, stored.Code)
	if !codeMatches || user == nil || codeErr != nil || userErr != nil {
		s.log.Warn("recovery reset rejected", zap.String("username", username))
		return ErrRecoveryFailed
	}

	digest, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, digest, time.Now().UTC()); err != nil {
		return fmt.Errorf("store new password: %w", err)
	}

	s.log.Info("password reset via recovery code", zap.String("username", user.Username))
	return nil
}
