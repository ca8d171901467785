package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mgirard/hbnb/internal/domain"
)

// PlaceRepository implements domain.PlaceRepository in memory.
type PlaceRepository struct {
	mu     sync.Mutex
	places map[string]domain.Place
	order  []string
}

// NewPlaceRepository creates an empty in-memory PlaceRepository.
func NewPlaceRepository() *PlaceRepository {
	return &PlaceRepository{places: make(map[string]domain.Place)}
}

func (r *PlaceRepository) Create(ctx context.Context, place *domain.Place) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.places[place.ID]; ok {
		return domain.ErrConflict
	}
	r.places[place.ID] = clonePlace(place)
	r.order = append(r.order, place.ID)
	return nil
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	place, ok := r.places[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	place.AmenityIDs = slices.Clone(place.AmenityIDs)
	return &place, nil
}

func (r *PlaceRepository) List(ctx context.Context) ([]domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	places := make([]domain.Place, 0, len(r.order))
	for _, id := range r.order {
		place := r.places[id]
		place.AmenityIDs = slices.Clone(place.AmenityIDs)
		places = append(places, place)
	}
	return places, nil
}

func (r *PlaceRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var places []domain.Place
	for _, id := range r.order {
		if place := r.places[id]; place.OwnerID == ownerID {
			place.AmenityIDs = slices.Clone(place.AmenityIDs)
			places = append(places, place)
		}
	}
	return places, nil
}

func (r *PlaceRepository) Update(ctx context.Context, place *domain.Place) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.places[place.ID]; !ok {
		return domain.ErrNotFound
	}
	r.places[place.ID] = clonePlace(place)
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.places[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.places, id)
	r.order = removeID(r.order, id)
	return nil
}

// clonePlace copies the place so callers cannot mutate stored state through
// the shared amenity slice.
func clonePlace(place *domain.Place) domain.Place {
	copied := *place
	copied.AmenityIDs = slices.Clone(place.AmenityIDs)
	return copied
}
