package repository

import (
	"context"

	"gympulse/internal/model"
)

// NutritionRepository defines nutrition goal persistence operations. Each
// user has at most one goal record.
type NutritionRepository interface {
	// FindByUser returns the user's goal, or nil when none exists.
	FindByUser(ctx context.Context, userID uint) (*model.NutritionGoal, error)
	// Upsert creates the user's goal or replaces the existing one in place,
	// keeping its id.
	Upsert(ctx context.Context, goal *model.NutritionGoal) error
}

type nutritionRepository struct {
	store *Store
}

// NewNutritionRepository creates a nutrition repository over the shared store.
func NewNutritionRepository(store *Store) NutritionRepository {
	return &nutritionRepository{store: store}
}

// FindByUser returns the user's nutrition goal, or nil when none exists.
func (r *nutritionRepository) FindByUser(ctx context.Context, userID uint) (*model.NutritionGoal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, goal := range s.nutritionGoals {
		if goal.UserID == userID {
			copied := *goal
			return &copied, nil
		}
	}
	return nil, nil
}

// Upsert creates or replaces the user's nutrition goal.
func (r *nutritionRepository) Upsert(ctx context.Context, goal *model.NutritionGoal) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.nutritionGoals {
		if existing.UserID == goal.UserID {
			goal.ID = id
			stored := *goal
			s.nutritionGoals[id] = &stored
			return nil
		}
	}

	goal.ID = s.nextNutritionGoalID
	s.nextNutritionGoalID++

	stored := *goal
	s.nutritionGoals[goal.ID] = &stored
	return nil
}
