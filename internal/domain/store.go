package domain

import "context"

// Store aggregates the per-entity repositories and lifecycle operations of a
// storage backend. Each implementation (in-memory, SQLite) owns its own
// schema strategy, ensuring the entire backend is swappable.
type Store interface {
	Users() UserRepository
	Places() PlaceRepository
	Amenities() AmenityRepository
	Reviews() ReviewRepository

	Migrate(ctx context.Context) error
	Close() error
}
