package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mgirard/hbnb/internal/domain"
)

// UpdateAmenityInput carries an update patch; nil fields are left unchanged.
type UpdateAmenityInput struct {
	Name *string
}

// CreateAmenity validates the name and persists a new amenity.
func (f *Facade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	amenity, err := domain.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	if _, err := f.store.Amenities().GetByName(ctx, amenity.Name); err == nil {
		return nil, fmt.Errorf("%w: amenity %q already exists", domain.ErrConflict, amenity.Name)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := f.store.Amenities().Create(ctx, amenity); err != nil {
		return nil, fmt.Errorf("create amenity: %w", err)
	}
	return amenity, nil
}

// GetAmenity returns an amenity by ID.
func (f *Facade) GetAmenity(ctx context.Context, id string) (*domain.Amenity, error) {
	return f.store.Amenities().GetByID(ctx, id)
}

// ListAmenities returns all amenities in insertion order.
func (f *Facade) ListAmenities(ctx context.Context) ([]domain.Amenity, error) {
	return f.store.Amenities().List(ctx)
}

// UpdateAmenity applies a patch to an existing amenity.
func (f *Facade) UpdateAmenity(ctx context.Context, id string, in UpdateAmenityInput) (*domain.Amenity, error) {
	amenity, err := f.store.Amenities().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name, err := domain.ValidateAmenityName(*in.Name)
		if err != nil {
			return nil, err
		}
		if existing, err := f.store.Amenities().GetByName(ctx, name); err == nil && existing.ID != id {
			return nil, fmt.Errorf("%w: amenity %q already exists", domain.ErrConflict, name)
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		amenity.Name = name
	}

	amenity.Touch()
	if err := f.store.Amenities().Update(ctx, amenity); err != nil {
		return nil, fmt.Errorf("update amenity: %w", err)
	}
	return amenity, nil
}

// DeleteAmenity removes an amenity. Places keep working; their amenity lists
// simply lose the reference on the next read in the relational backend.
func (f *Facade) DeleteAmenity(ctx context.Context, id string) error {
	return f.store.Amenities().Delete(ctx, id)
}
