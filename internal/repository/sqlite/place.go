package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mgirard/hbnb/internal/domain"
)

// PlaceRepository implements domain.PlaceRepository using SQLite.
// Amenity attachments live in the place_amenities join table and are written
// together with the place row in one transaction.
type PlaceRepository struct {
	db *sql.DB
}

// NewPlaceRepository creates a new SQLite-backed PlaceRepository.
func NewPlaceRepository(db *DB) *PlaceRepository {
	return &PlaceRepository{db: db.SqlDB}
}

func (r *PlaceRepository) Create(ctx context.Context, place *domain.Place) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO places (id, title, description, price, latitude, longitude, owner_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		place.ID, place.Title, place.Description, place.Price, place.Latitude, place.Longitude,
		place.OwnerID, place.CreatedAt, place.UpdatedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert place: %w", err)
	}

	if err := insertAmenityLinks(ctx, tx, place.ID, place.AmenityIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	place := &domain.Place{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, price, latitude, longitude, owner_id, created_at, updated_at
		 FROM places WHERE id = ?`, id,
	).Scan(&place.ID, &place.Title, &place.Description, &place.Price, &place.Latitude, &place.Longitude,
		&place.OwnerID, &place.CreatedAt, &place.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query place by id: %w", err)
	}

	place.AmenityIDs, err = r.amenityIDs(ctx, place.ID)
	if err != nil {
		return nil, err
	}
	return place, nil
}

func (r *PlaceRepository) List(ctx context.Context) ([]domain.Place, error) {
	return r.list(ctx,
		`SELECT id, title, description, price, latitude, longitude, owner_id, created_at, updated_at
		 FROM places ORDER BY rowid`)
}

func (r *PlaceRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Place, error) {
	return r.list(ctx,
		`SELECT id, title, description, price, latitude, longitude, owner_id, created_at, updated_at
		 FROM places WHERE owner_id = ? ORDER BY rowid`, ownerID)
}

func (r *PlaceRepository) list(ctx context.Context, query string, args ...any) ([]domain.Place, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query places: %w", err)
	}
	defer rows.Close()

	var places []domain.Place
	for rows.Next() {
		var place domain.Place
		if err := rows.Scan(&place.ID, &place.Title, &place.Description, &place.Price, &place.Latitude,
			&place.Longitude, &place.OwnerID, &place.CreatedAt, &place.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One extra query per place; fine for the demo-scale workload.
	for i := range places {
		places[i].AmenityIDs, err = r.amenityIDs(ctx, places[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return places, nil
}

func (r *PlaceRepository) Update(ctx context.Context, place *domain.Place) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE places SET title = ?, description = ?, price = ?, latitude = ?, longitude = ?, owner_id = ?, updated_at = ?
		 WHERE id = ?`,
		place.Title, place.Description, place.Price, place.Latitude, place.Longitude,
		place.OwnerID, place.UpdatedAt, place.ID,
	)
	if err != nil {
		return fmt.Errorf("update place: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}

	// Replace the amenity links wholesale; the set is tiny.
	if _, err := tx.ExecContext(ctx, "DELETE FROM place_amenities WHERE place_id = ?", place.ID); err != nil {
		return fmt.Errorf("clear amenity links: %w", err)
	}
	if err := insertAmenityLinks(ctx, tx, place.ID, place.AmenityIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	// ON DELETE CASCADE removes amenity links and reviews.
	result, err := r.db.ExecContext(ctx, "DELETE FROM places WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	return requireRowAffected(result)
}

func (r *PlaceRepository) amenityIDs(ctx context.Context, placeID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT amenity_id FROM place_amenities WHERE place_id = ? ORDER BY rowid", placeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query amenity links: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan amenity link: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertAmenityLinks(ctx context.Context, tx *sql.Tx, placeID string, amenityIDs []string) error {
	for _, amenityID := range amenityIDs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO place_amenities (place_id, amenity_id) VALUES (?, ?)",
			placeID, amenityID,
		)
		if err != nil {
			if isUniqueConstraintError(err) {
				return domain.ErrConflict
			}
			return fmt.Errorf("insert amenity link: %w", err)
		}
	}
	return nil
}
