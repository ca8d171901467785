package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Review represents a user's rating of a place. A user may review a given
// place at most once and may never review a place they own; both rules are
// enforced by the service layer, which resolves the referenced IDs.
type Review struct {
	ID        string
	Text      string
	Rating    int
	PlaceID   string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReview validates the given fields and returns a new Review.
// Place and user existence must be checked by the caller.
func NewReview(text string, rating int, placeID, userID string) (*Review, error) {
	text, err := ValidateReviewText(text)
	if err != nil {
		return nil, err
	}
	if _, err := ValidateRating(rating); err != nil {
		return nil, err
	}
	if placeID == "" {
		return nil, fmt.Errorf("%w: place_id is required", ErrInvalidInput)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	return &Review{
		ID:        uuid.NewString(),
		Text:      text,
		Rating:    rating,
		PlaceID:   placeID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Touch advances the update timestamp. Called after every mutation.
func (r *Review) Touch() {
	r.UpdatedAt = time.Now().UTC()
}

const (
	minRating = 1
	maxRating = 5
)

// ValidateReviewText normalizes and validates review text.
func ValidateReviewText(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: review text is required", ErrInvalidInput)
	}
	return value, nil
}

// ValidateRating validates a review rating.
func ValidateRating(value int) (int, error) {
	if value < minRating || value > maxRating {
		return 0, fmt.Errorf("%w: rating must be an integer between %d and %d", ErrInvalidInput, minRating, maxRating)
	}
	return value, nil
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	GetByUserAndPlace(ctx context.Context, userID, placeID string) (*Review, error)
	List(ctx context.Context) ([]Review, error)
	ListByPlace(ctx context.Context, placeID string) ([]Review, error)
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id string) error
	DeleteByPlace(ctx context.Context, placeID string) error
}
