package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Amenity represents a feature a place can offer (wifi, pool, parking, ...).
// Names are unique across the whole system.
type Amenity struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAmenity validates the name and returns a new Amenity. Name uniqueness
// is checked against the repository by the caller.
func NewAmenity(name string) (*Amenity, error) {
	name, err := ValidateAmenityName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Amenity{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Touch advances the update timestamp. Called after every mutation.
func (a *Amenity) Touch() {
	a.UpdatedAt = time.Now().UTC()
}

const maxAmenityNameLength = 50

// ValidateAmenityName normalizes and validates an amenity name.
func ValidateAmenityName(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > maxAmenityNameLength {
		return "", fmt.Errorf("%w: amenity name must be a non-empty string of at most %d characters", ErrInvalidInput, maxAmenityNameLength)
	}
	return value, nil
}

// AmenityRepository defines persistence operations for amenities.
type AmenityRepository interface {
	Create(ctx context.Context, amenity *Amenity) error
	GetByID(ctx context.Context, id string) (*Amenity, error)
	GetByName(ctx context.Context, name string) (*Amenity, error)
	List(ctx context.Context) ([]Amenity, error)
	Update(ctx context.Context, amenity *Amenity) error
	Delete(ctx context.Context, id string) error
}
