package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mgirard/hbnb/internal/domain"
	"github.com/mgirard/hbnb/internal/repository/memory"
	"github.com/mgirard/hbnb/internal/service"
)

// Tests run against the in-memory backend; the SQLite repositories have
// their own coverage.
func newTestFacade(t *testing.T) *service.Facade {
	t.Helper()
	// Cost 4 keeps bcrypt fast in tests.
	return service.NewFacade(memory.New(), 4)
}

func createTestUser(t *testing.T, facade *service.Facade, email string) *domain.User {
	t.Helper()
	user, err := facade.CreateUser(context.Background(), service.CreateUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     email,
		Password:  "password123",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func TestFacade_CreateUser(t *testing.T) {
	facade := newTestFacade(t)

	user := createTestUser(t, facade, "alice@example.com")
	if user.ID == "" {
		t.Fatal("expected ID to be assigned")
	}
	if user.PasswordHash == "" || user.PasswordHash == "password123" {
		t.Fatal("expected password to be hashed")
	}

	got, err := facade.GetUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Fatalf("expected alice@example.com, got %s", got.Email)
	}
}

func TestFacade_CreateUser_DuplicateEmail(t *testing.T) {
	facade := newTestFacade(t)
	ctx := context.Background()

	createTestUser(t, facade, "dup@example.com")

	_, err := facade.CreateUser(ctx, service.CreateUserInput{
		FirstName: "Bob",
		LastName:  "Jones",
		Email:     "dup@example.com",
		Password:  "password123",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// The failed create must not have been persisted.
	users, _ := facade.ListUsers(ctx)
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
}

func TestFacade_CreateUser_ShortPassword(t *testing.T) {
	facade := newTestFacade(t)

	_, err := facade.CreateUser(context.Background(), service.CreateUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "short",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFacade_UpdateUser(t *testing.T) {
	facade := newTestFacade(t)
	ctx := context.Background()

	user := createTestUser(t, facade, "alice@example.com")
	before := user.UpdatedAt

	newFirst := "Alicia"
	updated, err := facade.UpdateUser(ctx, user.ID, service.UpdateUserInput{FirstName: &newFirst})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.FirstName != "Alicia" {
		t.Fatalf("expected Alicia, got %s", updated.FirstName)
	}
	if updated.LastName != "Smith" {
		t.Fatalf("unpatched field changed: %s", updated.LastName)
	}
	if !updated.UpdatedAt.After(before) && !updated.UpdatedAt.Equal(before) {
		t.Fatal("expected UpdatedAt to advance")
	}
}

func TestFacade_UpdateUser_EmailConflict(t *testing.T) {
	facade := newTestFacade(t)
	ctx := context.Background()

	createTestUser(t, facade, "taken@example.com")
	user := createTestUser(t, facade, "free@example.com")

	taken := "taken@example.com"
	if _, err := facade.UpdateUser(ctx, user.ID, service.UpdateUserInput{Email: &taken}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Re-setting the user's own email is not a conflict.
	own := "free@example.com"
	if _, err := facade.UpdateUser(ctx, user.ID, service.UpdateUserInput{Email: &own}); err != nil {
		t.Fatalf("UpdateUser with own email: %v", err)
	}
}

func TestFacade_UpdateUser_NotFound(t *testing.T) {
	facade := newTestFacade(t)

	name := "Ghost"
	_, err := facade.UpdateUser(context.Background(), "missing", service.UpdateUserInput{FirstName: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFacade_GetUserByEmail(t *testing.T) {
	facade := newTestFacade(t)

	user := createTestUser(t, facade, "alice@example.com")
	got, err := facade.GetUserByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected %s, got %s", user.ID, got.ID)
	}
}
