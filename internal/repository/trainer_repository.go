package repository

import (
	"context"
	"sort"

	"gympulse/internal/model"
)

// TrainerRepository defines trainer persistence operations.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *model.Trainer) error
	List(ctx context.Context) ([]model.Trainer, error)
}

type trainerRepository struct {
	store *Store
}

// NewTrainerRepository creates a trainer repository over the shared store.
func NewTrainerRepository(store *Store) TrainerRepository {
	return &trainerRepository{store: store}
}

// Create stores a new trainer, assigning its id.
func (r *trainerRepository) Create(ctx context.Context, trainer *model.Trainer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	trainer.ID = s.nextTrainerID
	s.nextTrainerID++

	stored := *trainer
	s.trainers[trainer.ID] = &stored
	return nil
}

// List returns all trainers ordered by id.
func (r *trainerRepository) List(ctx context.Context) ([]model.Trainer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	trainers := make([]model.Trainer, 0, len(s.trainers))
	for _, trainer := range s.trainers {
		trainers = append(trainers, *trainer)
	}
	sort.Slice(trainers, func(i, j int) bool { return trainers[i].ID < trainers[j].ID })
	return trainers, nil
}
