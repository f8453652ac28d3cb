package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/repository"
)

func TestRecoveryCodeRepository_GetOrCreateKeepsExisting(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewRecoveryCodeRepository(mock)

	createdAt := time.Now().UTC()
	candidate := domain.RecoveryCode{Code: "NEWC-NEWC-NEWC-NEWC", CreatedAt: createdAt}

	// Insert is a no-op because a code already exists; the stored code wins.
	mock.ExpectExec(`INSERT INTO recovery_codes`).
		WithArgs(1, candidate.Code, candidate.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	storedAt := createdAt.Add(-time.Hour)
	mock.ExpectQuery(`SELECT .*FROM recovery_codes`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"code", "created_at"}).AddRow("OLDC-OLDC-OLDC-OLDC", storedAt))

	code, err := repo.GetOrCreate(context.Background(), &candidate)
	if err != nil {
		t.Fatalf("GetOrCreate returned error: %v", err)
	}
	if code.Code != "OLDC-OLDC-OLDC-OLDC" {
		t.Fatalf("expected existing code to win, got %s", code.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecoveryCodeRepository_GetNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewRecoveryCodeRepository(mock)

	mock.ExpectQuery(`SELECT .*FROM recovery_codes`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"code", "created_at"}))

	if _, err := repo.Get(context.Background()); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
