package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mgirard/hbnb/internal/domain"
	"github.com/mgirard/hbnb/internal/service"
)

func TestFacade_CreateAmenity(t *testing.T) {
	facade := newTestFacade(t)
	ctx := context.Background()

	amenity, err := facade.CreateAmenity(ctx, "Wi-Fi")
	if err != nil {
		t.Fatalf("CreateAmenity: %v", err)
	}
	if amenity.Name != "Wi-Fi" {
		t.Fatalf("expected Wi-Fi, got %s", amenity.Name)
	}

	got, err := facade.GetAmenity(ctx, amenity.ID)
	if err != nil {
		t.Fatalf("GetAmenity: %v", err)
	}
	if got.ID != amenity.ID {
		t.Fatalf("expected %s, got %s", amenity.ID, got.ID)
	}
}

func TestFacade_CreateAmenity_DuplicateName(t *testing.T) {
	facade := newTestFacade(t)
	ctx := context.Background()

	if _, err := facade.CreateAmenity(ctx, "Pool"); err != nil {
		t.Fatalf("CreateAmenity: %v", err)
	}
	if _, err := facade.CreateAmenity(ctx, "Pool"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestFacade_UpdateAmenity(t *testing.T) {
	facade := newTestFacade(t)
	ctx := context.Background()

	amenity, err := facade.CreateAmenity(ctx, "Parking")
	if err != nil {
		t.Fatalf("CreateAmenity: %v", err)
	}

	newName := "Free Parking"
	updated, err := facade.UpdateAmenity(ctx, amenity.ID, service.UpdateAmenityInput{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateAmenity: %v", err)
	}
	if updated.Name != "Free Parking" {
		t.Fatalf("expected Free Parking, got %s", updated.Name)
	}
}

func TestFacade_UpdateAmenity_NameConflict(t *testing.T) {
	facade := newTestFacade(t)
	ctx := context.Background()

	if _, err := facade.CreateAmenity(ctx, "Sauna"); err != nil {
		t.Fatalf("CreateAmenity: %v", err)
	}
	amenity, err := facade.CreateAmenity(ctx, "Gym")
	if err != nil {
		t.Fatalf("CreateAmenity: %v", err)
	}

	conflictName := "Sauna"
	if _, err := facade.UpdateAmenity(ctx, amenity.ID, service.UpdateAmenityInput{Name: &conflictName}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestFacade_DeleteAmenity(t *testing.T) {
	facade := newTestFacade(t)
	ctx := context.Background()

	amenity, err := facade.CreateAmenity(ctx, "Hot Tub")
	if err != nil {
		t.Fatalf("CreateAmenity: %v", err)
	}
	if err := facade.DeleteAmenity(ctx, amenity.ID); err != nil {
		t.Fatalf("DeleteAmenity: %v", err)
	}
	if _, err := facade.GetAmenity(ctx, amenity.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
