package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mgirard/hbnb/internal/domain"
)

// ReviewRepository implements domain.ReviewRepository using SQLite.
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new SQLite-backed ReviewRepository.
func NewReviewRepository(db *DB) *ReviewRepository {
	return &ReviewRepository{db: db.SqlDB}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (id, text, rating, place_id, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		review.ID, review.Text, review.Rating, review.PlaceID, review.UserID,
		review.CreatedAt, review.UpdatedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			// The only non-key unique constraint is (user_id, place_id).
			return domain.ErrDuplicateReview
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	review := &domain.Review{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, text, rating, place_id, user_id, created_at, updated_at
		 FROM reviews WHERE id = ?`, id,
	).Scan(&review.ID, &review.Text, &review.Rating, &review.PlaceID, &review.UserID,
		&review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query review by id: %w", err)
	}
	return review, nil
}

func (r *ReviewRepository) GetByUserAndPlace(ctx context.Context, userID, placeID string) (*domain.Review, error) {
	review := &domain.Review{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, text, rating, place_id, user_id, created_at, updated_at
		 FROM reviews WHERE user_id = ? AND place_id = ?`, userID, placeID,
	).Scan(&review.ID, &review.Text, &review.Rating, &review.PlaceID, &review.UserID,
		&review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query review by user and place: %w", err)
	}
	return review, nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	return r.list(ctx,
		`SELECT id, text, rating, place_id, user_id, created_at, updated_at
		 FROM reviews ORDER BY rowid`)
}

func (r *ReviewRepository) ListByPlace(ctx context.Context, placeID string) ([]domain.Review, error) {
	return r.list(ctx,
		`SELECT id, text, rating, place_id, user_id, created_at, updated_at
		 FROM reviews WHERE place_id = ? ORDER BY rowid`, placeID)
}

func (r *ReviewRepository) list(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.Text, &review.Rating, &review.PlaceID, &review.UserID,
			&review.CreatedAt, &review.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE reviews SET text = ?, rating = ?, updated_at = ? WHERE id = ?`,
		review.Text, review.Rating, review.UpdatedAt, review.ID,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return requireRowAffected(result)
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return requireRowAffected(result)
}

func (r *ReviewRepository) DeleteByPlace(ctx context.Context, placeID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE place_id = ?", placeID)
	if err != nil {
		return fmt.Errorf("delete reviews by place: %w", err)
	}
	return nil
}
