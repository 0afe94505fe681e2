package repository

import (
	"context"
	"sort"

	"gympulse/internal/errors"
	"gympulse/internal/model"
)

// ClassRepository defines class persistence operations. SpotsLeft is never
// written directly by callers; ReserveSpot and ReleaseSpot are the only
// mutators, and both run under the store's write lock so the invariant
// 0 <= spotsLeft <= capacity holds under concurrent bookings.
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	FindByID(ctx context.Context, id uint) (*model.Class, error)
	List(ctx context.Context) ([]model.Class, error)
	ReserveSpot(ctx context.Context, id uint) (*model.Class, error)
	ReleaseSpot(ctx context.Context, id uint) error
}

type classRepository struct {
	store *Store
}

// NewClassRepository creates a class repository over the shared store.
func NewClassRepository(store *Store) ClassRepository {
	return &classRepository{store: store}
}

// Create stores a new class, assigning its id.
func (r *classRepository) Create(ctx context.Context, class *model.Class) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	class.ID = s.nextClassID
	s.nextClassID++

	stored := *class
	s.classes[class.ID] = &stored
	return nil
}

// FindByID finds a class by id.
func (r *classRepository) FindByID(ctx context.Context, id uint) (*model.Class, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	class, ok := s.classes[id]
	if !ok {
		return nil, errors.ErrClassNotFound
	}
	copied := *class
	return &copied, nil
}

// List returns all classes ordered by id.
func (r *classRepository) List(ctx context.Context) ([]model.Class, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	classes := make([]model.Class, 0, len(s.classes))
	for _, class := range s.classes {
		classes = append(classes, *class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ID < classes[j].ID })
	return classes, nil
}

// ReserveSpot atomically takes one spot in the class. It fails with
// ErrClassFull when no spots remain, leaving the counter untouched.
func (r *classRepository) ReserveSpot(ctx context.Context, id uint) (*model.Class, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	class, ok := s.classes[id]
	if !ok {
		return nil, errors.ErrClassNotFound
	}
	if class.SpotsLeft == 0 {
		return nil, errors.ErrClassFull
	}
	class.SpotsLeft--

	copied := *class
	return &copied, nil
}

// ReleaseSpot returns one spot to the class. Releasing against a deleted
// class is a no-op, and the counter is clamped at capacity.
func (r *classRepository) ReleaseSpot(ctx context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	class, ok := s.classes[id]
	if !ok {
		return nil
	}
	if class.SpotsLeft < class.Capacity {
		class.SpotsLeft++
	}
	return nil
}
