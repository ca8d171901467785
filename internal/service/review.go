package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mgirard/hbnb/internal/domain"
)

// CreateReviewInput carries the fields for review creation.
type CreateReviewInput struct {
	Text    string
	Rating  int
	PlaceID string
	UserID  string
}

// UpdateReviewInput carries an update patch; nil fields are left unchanged.
// The place and user references of a review are immutable.
type UpdateReviewInput struct {
	Text   *string
	Rating *int
}

// CreateReview validates the input and enforces the cross-entity rules:
// the place and user must exist, a user may not review a place they own,
// and a user may review a given place at most once.
func (f *Facade) CreateReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	review, err := domain.NewReview(in.Text, in.Rating, in.PlaceID, in.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := f.store.Users().GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", domain.ErrInvalidReference, in.UserID)
		}
		return nil, err
	}
	place, err := f.store.Places().GetByID(ctx, in.PlaceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: place %s", domain.ErrInvalidReference, in.PlaceID)
		}
		return nil, err
	}

	if place.OwnerID == in.UserID {
		return nil, fmt.Errorf("%w: cannot review your own place", domain.ErrForbidden)
	}

	if _, err := f.store.Reviews().GetByUserAndPlace(ctx, in.UserID, in.PlaceID); err == nil {
		return nil, domain.ErrDuplicateReview
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := f.store.Reviews().Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// GetReview returns a review by ID.
func (f *Facade) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	return f.store.Reviews().GetByID(ctx, id)
}

// ListReviews returns all reviews in insertion order.
func (f *Facade) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return f.store.Reviews().List(ctx)
}

// ListReviewsForPlace returns the reviews attached to a place. The place
// must exist.
func (f *Facade) ListReviewsForPlace(ctx context.Context, placeID string) ([]domain.Review, error) {
	if _, err := f.store.Places().GetByID(ctx, placeID); err != nil {
		return nil, err
	}
	return f.store.Reviews().ListByPlace(ctx, placeID)
}

// UpdateReview applies a patch to an existing review.
func (f *Facade) UpdateReview(ctx context.Context, id string, in UpdateReviewInput) (*domain.Review, error) {
	review, err := f.store.Reviews().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Text != nil {
		if review.Text, err = domain.ValidateReviewText(*in.Text); err != nil {
			return nil, err
		}
	}
	if in.Rating != nil {
		if review.Rating, err = domain.ValidateRating(*in.Rating); err != nil {
			return nil, err
		}
	}

	review.Touch()
	if err := f.store.Reviews().Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	return review, nil
}

// DeleteReview removes a review.
func (f *Facade) DeleteReview(ctx context.Context, id string) error {
	return f.store.Reviews().Delete(ctx, id)
}
