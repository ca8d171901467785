package memory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mgirard/hbnb/internal/domain"
	"github.com/mgirard/hbnb/internal/repository/memory"
)

// Verify that *memory.Store implements domain.Store at compile time.
var _ domain.Store = (*memory.Store)(nil)

func mustUser(t *testing.T, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Test", "User", email, false)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	return user
}

func TestUserRepository_CRUD(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	user := mustUser(t, "alice@example.com")
	if err := store.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Fatalf("expected alice@example.com, got %s", got.Email)
	}

	got, err = store.Users().GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected ID %s, got %s", user.ID, got.ID)
	}

	got.FirstName = "Alicia"
	got.Touch()
	if err := store.Users().Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	updated, _ := store.Users().GetByID(ctx, user.ID)
	if updated.FirstName != "Alicia" {
		t.Fatalf("expected Alicia, got %s", updated.FirstName)
	}

	if err := store.Users().Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Users().GetByID(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	if err := store.Users().Create(ctx, mustUser(t, "dup@example.com")); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	err := store.Users().Create(ctx, mustUser(t, "dup@example.com"))
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserRepository_ListInsertionOrder(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		user := mustUser(t, fmt.Sprintf("user%d@example.com", i))
		if err := store.Users().Create(ctx, user); err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, user.ID)
	}

	users, err := store.Users().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 5 {
		t.Fatalf("expected 5 users, got %d", len(users))
	}
	for i, user := range users {
		if user.ID != ids[i] {
			t.Fatalf("position %d: expected %s, got %s", i, ids[i], user.ID)
		}
	}
}

func TestAmenityRepository_DuplicateName(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	wifi, _ := domain.NewAmenity("Wifi")
	if err := store.Amenities().Create(ctx, wifi); err != nil {
		t.Fatalf("Create: %v", err)
	}

	again, _ := domain.NewAmenity("Wifi")
	if err := store.Amenities().Create(ctx, again); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	pool, _ := domain.NewAmenity("Pool")
	if err := store.Amenities().Create(ctx, pool); err != nil {
		t.Fatalf("Create pool: %v", err)
	}
	// Renaming pool to an existing name must also conflict.
	pool.Name = "Wifi"
	if err := store.Amenities().Update(ctx, pool); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict on rename, got %v", err)
	}
}

func TestPlaceRepository_CloneIsolation(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	place, _ := domain.NewPlace("Loft", "", 100, 0, 0, "owner-1")
	place.AddAmenity("wifi")
	if err := store.Places().Create(ctx, place); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Places().GetByID(ctx, place.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	got.AmenityIDs[0] = "mutated"

	fresh, _ := store.Places().GetByID(ctx, place.ID)
	if fresh.AmenityIDs[0] != "wifi" {
		t.Fatal("stored place was mutated through a returned copy")
	}
}

func TestReviewRepository_DuplicateUserPlace(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	first, _ := domain.NewReview("Nice", 4, "place-1", "user-1")
	if err := store.Reviews().Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second, _ := domain.NewReview("Again", 2, "place-1", "user-1")
	if err := store.Reviews().Create(ctx, second); !errors.Is(err, domain.ErrDuplicateReview) {
		t.Fatalf("expected ErrDuplicateReview, got %v", err)
	}

	// Same user, different place is fine.
	other, _ := domain.NewReview("Other", 3, "place-2", "user-1")
	if err := store.Reviews().Create(ctx, other); err != nil {
		t.Fatalf("Create for other place: %v", err)
	}
}

func TestReviewRepository_DeleteByPlace(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	for i, placeID := range []string{"place-1", "place-1", "place-2"} {
		review, _ := domain.NewReview("ok", 3, placeID, fmt.Sprintf("user-%d", i))
		if err := store.Reviews().Create(ctx, review); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if err := store.Reviews().DeleteByPlace(ctx, "place-1"); err != nil {
		t.Fatalf("DeleteByPlace: %v", err)
	}

	all, err := store.Reviews().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 || all[0].PlaceID != "place-2" {
		t.Fatalf("expected only place-2 review to remain, got %+v", all)
	}
}
