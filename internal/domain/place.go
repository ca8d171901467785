package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Place represents a rentable property listed by a user.
// Relationships are stored as IDs and resolved through repository lookups,
// never as entity pointers, so there are no ownership cycles.
type Place struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	AmenityIDs  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPlace validates the given fields and returns a new Place.
// The owner ID must be resolved against the user repository by the caller.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID string) (*Place, error) {
	title, err := ValidateTitle(title)
	if err != nil {
		return nil, err
	}
	if _, err := ValidatePrice(price); err != nil {
		return nil, err
	}
	if _, err := ValidateLatitude(latitude); err != nil {
		return nil, err
	}
	if _, err := ValidateLongitude(longitude); err != nil {
		return nil, err
	}
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner_id is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	return &Place{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// AddAmenity attaches an amenity by ID. Duplicate attachments are ignored.
func (p *Place) AddAmenity(amenityID string) {
	for _, id := range p.AmenityIDs {
		if id == amenityID {
			return
		}
	}
	p.AmenityIDs = append(p.AmenityIDs, amenityID)
}

// HasAmenity reports whether the amenity is already attached.
func (p *Place) HasAmenity(amenityID string) bool {
	for _, id := range p.AmenityIDs {
		if id == amenityID {
			return true
		}
	}
	return false
}

// Touch advances the update timestamp. Called after every mutation.
func (p *Place) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

const (
	maxTitleLength = 100
	minLatitude    = -90.0
	maxLatitude    = 90.0
	minLongitude   = -180.0
	maxLongitude   = 180.0
)

// ValidateTitle normalizes and validates a place title.
func ValidateTitle(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > maxTitleLength {
		return "", fmt.Errorf("%w: title must be a non-empty string of at most %d characters", ErrInvalidInput, maxTitleLength)
	}
	return value, nil
}

// ValidatePrice validates a price per night.
func ValidatePrice(value float64) (float64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("%w: price must be a positive number", ErrInvalidInput)
	}
	return value, nil
}

// ValidateLatitude validates a latitude coordinate.
func ValidateLatitude(value float64) (float64, error) {
	if value < minLatitude || value > maxLatitude {
		return 0, fmt.Errorf("%w: latitude must be between %.1f and %.1f", ErrInvalidInput, minLatitude, maxLatitude)
	}
	return value, nil
}

// ValidateLongitude validates a longitude coordinate.
func ValidateLongitude(value float64) (float64, error) {
	if value < minLongitude || value > maxLongitude {
		return 0, fmt.Errorf("%w: longitude must be between %.1f and %.1f", ErrInvalidInput, minLongitude, maxLongitude)
	}
	return value, nil
}

// PlaceRepository defines persistence operations for places.
type PlaceRepository interface {
	Create(ctx context.Context, place *Place) error
	GetByID(ctx context.Context, id string) (*Place, error)
	List(ctx context.Context) ([]Place, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Place, error)
	Update(ctx context.Context, place *Place) error
	Delete(ctx context.Context, id string) error
}
