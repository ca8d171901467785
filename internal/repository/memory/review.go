package memory

import (
	"context"
	"sync"

	"github.com/mgirard/hbnb/internal/domain"
)

// ReviewRepository implements domain.ReviewRepository in memory.
type ReviewRepository struct {
	mu      sync.Mutex
	reviews map[string]domain.Review
	order   []string
}

// NewReviewRepository creates an empty in-memory ReviewRepository.
func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{reviews: make(map[string]domain.Review)}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[review.ID]; ok {
		return domain.ErrConflict
	}
	for _, existing := range r.reviews {
		if existing.UserID == review.UserID && existing.PlaceID == review.PlaceID {
			return domain.ErrDuplicateReview
		}
	}

	r.reviews[review.ID] = *review
	r.order = append(r.order, review.ID)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &review, nil
}

func (r *ReviewRepository) GetByUserAndPlace(ctx context.Context, userID, placeID string) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if review := r.reviews[id]; review.UserID == userID && review.PlaceID == placeID {
			return &review, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews := make([]domain.Review, 0, len(r.order))
	for _, id := range r.order {
		reviews = append(reviews, r.reviews[id])
	}
	return reviews, nil
}

func (r *ReviewRepository) ListByPlace(ctx context.Context, placeID string) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var reviews []domain.Review
	for _, id := range r.order {
		if review := r.reviews[id]; review.PlaceID == placeID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[review.ID]; !ok {
		return domain.ErrNotFound
	}
	r.reviews[review.ID] = *review
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.reviews, id)
	r.order = removeID(r.order, id)
	return nil
}

func (r *ReviewRepository) DeleteByPlace(ctx context.Context, placeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.order[:0]
	for _, id := range r.order {
		if r.reviews[id].PlaceID == placeID {
			delete(r.reviews, id)
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return nil
}
