package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mgirard/hbnb/internal/domain"
)

// AmenityRepository implements domain.AmenityRepository using SQLite.
type AmenityRepository struct {
	db *sql.DB
}

// NewAmenityRepository creates a new SQLite-backed AmenityRepository.
func NewAmenityRepository(db *DB) *AmenityRepository {
	return &AmenityRepository{db: db.SqlDB}
}

func (r *AmenityRepository) Create(ctx context.Context, amenity *domain.Amenity) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO amenities (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		amenity.ID, amenity.Name, amenity.CreatedAt, amenity.UpdatedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert amenity: %w", err)
	}
	return nil
}

func (r *AmenityRepository) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	return r.getOne(ctx, "id", id)
}

func (r *AmenityRepository) GetByName(ctx context.Context, name string) (*domain.Amenity, error) {
	return r.getOne(ctx, "name", name)
}

func (r *AmenityRepository) getOne(ctx context.Context, column, value string) (*domain.Amenity, error) {
	amenity := &domain.Amenity{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM amenities WHERE `+column+` = ?`, value,
	).Scan(&amenity.ID, &amenity.Name, &amenity.CreatedAt, &amenity.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query amenity by %s: %w", column, err)
	}
	return amenity, nil
}

func (r *AmenityRepository) List(ctx context.Context) ([]domain.Amenity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM amenities ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("query amenities: %w", err)
	}
	defer rows.Close()

	var amenities []domain.Amenity
	for rows.Next() {
		var amenity domain.Amenity
		if err := rows.Scan(&amenity.ID, &amenity.Name, &amenity.CreatedAt, &amenity.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan amenity: %w", err)
		}
		amenities = append(amenities, amenity)
	}
	return amenities, rows.Err()
}

func (r *AmenityRepository) Update(ctx context.Context, amenity *domain.Amenity) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE amenities SET name = ?, updated_at = ? WHERE id = ?`,
		amenity.Name, amenity.UpdatedAt, amenity.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update amenity: %w", err)
	}
	return requireRowAffected(result)
}

func (r *AmenityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM amenities WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete amenity: %w", err)
	}
	return requireRowAffected(result)
}
