// Package memory provides an in-memory storage backend. It keeps entities in
// keyed maps with insertion-order index slices, guarded by one mutex per
// collection so check-then-insert uniqueness checks are race free.
package memory

import (
	"context"

	"github.com/mgirard/hbnb/internal/domain"
)

// Store implements domain.Store entirely in memory. Useful for tests and
// demo runs where no database file is wanted.
type Store struct {
	users     *UserRepository
	places    *PlaceRepository
	amenities *AmenityRepository
	reviews   *ReviewRepository
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:     NewUserRepository(),
		places:    NewPlaceRepository(),
		amenities: NewAmenityRepository(),
		reviews:   NewReviewRepository(),
	}
}

func (s *Store) Users() domain.UserRepository       { return s.users }
func (s *Store) Places() domain.PlaceRepository     { return s.places }
func (s *Store) Amenities() domain.AmenityRepository { return s.amenities }
func (s *Store) Reviews() domain.ReviewRepository   { return s.reviews }

// Migrate is a no-op; the in-memory backend has no schema.
func (s *Store) Migrate(ctx context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }
