package memory

import (
	"context"
	"sync"

	"github.com/mgirard/hbnb/internal/domain"
)

// AmenityRepository implements domain.AmenityRepository in memory.
type AmenityRepository struct {
	mu        sync.Mutex
	amenities map[string]domain.Amenity
	order     []string
}

// NewAmenityRepository creates an empty in-memory AmenityRepository.
func NewAmenityRepository() *AmenityRepository {
	return &AmenityRepository{amenities: make(map[string]domain.Amenity)}
}

func (r *AmenityRepository) Create(ctx context.Context, amenity *domain.Amenity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.amenities[amenity.ID]; ok {
		return domain.ErrConflict
	}
	for _, a := range r.amenities {
		if a.Name == amenity.Name {
			return domain.ErrConflict
		}
	}

	r.amenities[amenity.ID] = *amenity
	r.order = append(r.order, amenity.ID)
	return nil
}

func (r *AmenityRepository) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	amenity, ok := r.amenities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &amenity, nil
}

func (r *AmenityRepository) GetByName(ctx context.Context, name string) (*domain.Amenity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if amenity := r.amenities[id]; amenity.Name == name {
			return &amenity, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *AmenityRepository) List(ctx context.Context) ([]domain.Amenity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	amenities := make([]domain.Amenity, 0, len(r.order))
	for _, id := range r.order {
		amenities = append(amenities, r.amenities[id])
	}
	return amenities, nil
}

func (r *AmenityRepository) Update(ctx context.Context, amenity *domain.Amenity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.amenities[amenity.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, a := range r.amenities {
		if a.Name == amenity.Name && a.ID != amenity.ID {
			return domain.ErrConflict
		}
	}

	r.amenities[amenity.ID] = *amenity
	return nil
}

func (r *AmenityRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.amenities[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.amenities, id)
	r.order = removeID(r.order, id)
	return nil
}
