package repository

import (
	"context"
	"sort"

	"gympulse/internal/errors"
	"gympulse/internal/model"
)

// RoutineRepository defines workout routine and exercise persistence
// operations. Exercises only exist as children of a routine.
type RoutineRepository interface {
	Create(ctx context.Context, routine *model.Routine) error
	FindByID(ctx context.Context, id uint) (*model.Routine, error)
	List(ctx context.Context) ([]model.Routine, error)
	CreateExercise(ctx context.Context, exercise *model.Exercise) error
	ListExercisesByRoutine(ctx context.Context, routineID uint) ([]model.Exercise, error)
}

type routineRepository struct {
	store *Store
}

// NewRoutineRepository creates a routine repository over the shared store.
func NewRoutineRepository(store *Store) RoutineRepository {
	return &routineRepository{store: store}
}

// Create stores a new routine, assigning its id.
func (r *routineRepository) Create(ctx context.Context, routine *model.Routine) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	routine.ID = s.nextRoutineID
	s.nextRoutineID++

	stored := *routine
	s.routines[routine.ID] = &stored
	return nil
}

// FindByID finds a routine by id.
func (r *routineRepository) FindByID(ctx context.Context, id uint) (*model.Routine, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	routine, ok := s.routines[id]
	if !ok {
		return nil, errors.ErrRoutineNotFound
	}
	copied := *routine
	return &copied, nil
}

// List returns all routines ordered by id.
func (r *routineRepository) List(ctx context.Context) ([]model.Routine, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	routines := make([]model.Routine, 0, len(s.routines))
	for _, routine := range s.routines {
		routines = append(routines, *routine)
	}
	sort.Slice(routines, func(i, j int) bool { return routines[i].ID < routines[j].ID })
	return routines, nil
}

// CreateExercise stores a new exercise, assigning its id.
func (r *routineRepository) CreateExercise(ctx context.Context, exercise *model.Exercise) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise.ID = s.nextExerciseID
	s.nextExerciseID++

	stored := *exercise
	s.exercises[exercise.ID] = &stored
	return nil
}

// ListExercisesByRoutine returns the routine's exercises in display order.
func (r *routineRepository) ListExercisesByRoutine(ctx context.Context, routineID uint) ([]model.Exercise, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exercises []model.Exercise
	for _, exercise := range s.exercises {
		if exercise.RoutineID == routineID {
			exercises = append(exercises, *exercise)
		}
	}
	sort.Slice(exercises, func(i, j int) bool { return exercises[i].Order < exercises[j].Order })
	return exercises, nil
}
