package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mgirard/hbnb/internal/domain"
)

// CreatePlaceInput carries the fields for place creation. Relationships are
// given as IDs and resolved against the repositories before anything is
// persisted.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	AmenityIDs  []string
}

// UpdatePlaceInput carries an update patch; nil fields are left unchanged.
// A non-nil AmenityIDs replaces the full attachment list.
type UpdatePlaceInput struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	OwnerID     *string
	AmenityIDs  *[]string
}

// CreatePlace validates the input, resolves the owner and amenity
// references, and persists a new place. Duplicate amenity IDs are collapsed.
func (f *Facade) CreatePlace(ctx context.Context, in CreatePlaceInput) (*domain.Place, error) {
	place, err := domain.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, in.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := f.resolveOwner(ctx, in.OwnerID); err != nil {
		return nil, err
	}
	for _, amenityID := range in.AmenityIDs {
		if err := f.resolveAmenity(ctx, amenityID); err != nil {
			return nil, err
		}
		place.AddAmenity(amenityID)
	}

	if err := f.store.Places().Create(ctx, place); err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}
	return place, nil
}

// GetPlace returns a place by ID.
func (f *Facade) GetPlace(ctx context.Context, id string) (*domain.Place, error) {
	return f.store.Places().GetByID(ctx, id)
}

// ListPlaces returns all places in insertion order.
func (f *Facade) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	return f.store.Places().List(ctx)
}

// UpdatePlace applies a patch to an existing place. Ownership transfer and
// amenity list replacement both require the new references to resolve.
func (f *Facade) UpdatePlace(ctx context.Context, id string, in UpdatePlaceInput) (*domain.Place, error) {
	place, err := f.store.Places().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if place.Title, err = domain.ValidateTitle(*in.Title); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		place.Description = *in.Description
	}
	if in.Price != nil {
		if place.Price, err = domain.ValidatePrice(*in.Price); err != nil {
			return nil, err
		}
	}
	if in.Latitude != nil {
		if place.Latitude, err = domain.ValidateLatitude(*in.Latitude); err != nil {
			return nil, err
		}
	}
	if in.Longitude != nil {
		if place.Longitude, err = domain.ValidateLongitude(*in.Longitude); err != nil {
			return nil, err
		}
	}
	if in.OwnerID != nil {
		if err := f.resolveOwner(ctx, *in.OwnerID); err != nil {
			return nil, err
		}
		place.OwnerID = *in.OwnerID
	}
	if in.AmenityIDs != nil {
		place.AmenityIDs = nil
		for _, amenityID := range *in.AmenityIDs {
			if err := f.resolveAmenity(ctx, amenityID); err != nil {
				return nil, err
			}
			place.AddAmenity(amenityID)
		}
	}

	place.Touch()
	if err := f.store.Places().Update(ctx, place); err != nil {
		return nil, fmt.Errorf("update place: %w", err)
	}
	return place, nil
}

// DeletePlace removes a place and all reviews attached to it.
func (f *Facade) DeletePlace(ctx context.Context, id string) error {
	if _, err := f.store.Places().GetByID(ctx, id); err != nil {
		return err
	}
	if err := f.store.Reviews().DeleteByPlace(ctx, id); err != nil {
		return fmt.Errorf("delete place reviews: %w", err)
	}
	return f.store.Places().Delete(ctx, id)
}

func (f *Facade) resolveOwner(ctx context.Context, ownerID string) error {
	if _, err := f.store.Users().GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: owner %s", domain.ErrInvalidReference, ownerID)
		}
		return err
	}
	return nil
}

func (f *Facade) resolveAmenity(ctx context.Context, amenityID string) error {
	if _, err := f.store.Amenities().GetByID(ctx, amenityID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: amenity %s", domain.ErrInvalidReference, amenityID)
		}
		return err
	}
	return nil
}
