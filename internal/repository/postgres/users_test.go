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

func userRow(user domain.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "username", "email", "first_name", "last_name", "password_hash", "is_admin", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash, user.IsAdmin, user.CreatedAt, user.UpdatedAt,
	)
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)

	now := time.Now().UTC()
	user := domain.User{
		ID:           "user-1",
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: "argon2id$v=19$m=65536,t=3,p=4$salt$hash",
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(
			user.ID,
			user.Username,
			user.Email,
			user.FirstName,
			user.LastName,
			user.PasswordHash,
			user.IsAdmin,
			user.CreatedAt,
			user.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.Create(context.Background(), &user); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)

	now := time.Now().UTC()
	stored := domain.User{
		ID:           "user-1",
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: "digest",
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectQuery(`SELECT .*FROM users`).WithArgs("admin").WillReturnRows(userRow(stored))

	user, err := repo.GetByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("GetByUsername returned error: %v", err)
	}
	if user.ID != stored.ID || !user.IsAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_GetByUsernameNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)

	rows := pgxmock.NewRows([]string{
		"id", "username", "email", "first_name", "last_name", "password_hash", "is_admin", "created_at", "updated_at",
	})
	mock.ExpectQuery(`SELECT .*FROM users`).WithArgs("ghost").WillReturnRows(rows)

	if _, err := repo.GetByUsername(context.Background(), "ghost"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)

	changedAt := time.Now().UTC()
	mock.ExpectExec(`UPDATE users`).
		WithArgs("new-digest", changedAt, "user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := repo.UpdatePassword(context.Background(), "user-1", "new-digest", changedAt); err != nil {
		t.Fatalf("UpdatePassword returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_UpdatePasswordMissingUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)

	changedAt := time.Now().UTC()
	mock.ExpectExec(`UPDATE users`).
		WithArgs("digest", changedAt, "ghost").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if err := repo.UpdatePassword(context.Background(), "ghost", "digest", changedAt); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_Count(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
