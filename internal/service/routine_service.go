package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gympulse/internal/cache"
	"gympulse/internal/model"
	"gympulse/internal/repository"
)

// Routines only change at seed time, so they can be cached for longer than
// the schedule.
const routineCacheTTL = 5 * time.Minute

// RoutineService serves workout routines and their exercises.
type RoutineService interface {
	ListRoutines(ctx context.Context) ([]model.Routine, error)
	GetRoutine(ctx context.Context, id uint) (*model.RoutineWithExercises, error)
}

type routineService struct {
	routineRepo repository.RoutineRepository
	cache       *cache.Client
}

// NewRoutineService creates a new routine service.
func NewRoutineService(routineRepo repository.RoutineRepository, cacheClient *cache.Client) RoutineService {
	return &routineService{
		routineRepo: routineRepo,
		cache:       cacheClient,
	}
}

// ListRoutines returns all routines, cache first.
func (s *routineService) ListRoutines(ctx context.Context) ([]model.Routine, error) {
	if data, _ := s.cache.Get(ctx, cache.KeyRoutines); data != nil {
		var cached []model.Routine
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	routines, err := s.routineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}

	if payload, err := json.Marshal(routines); err == nil {
		_ = s.cache.Set(ctx, cache.KeyRoutines, payload, routineCacheTTL)
	}

	return routines, nil
}

// GetRoutine returns a routine with its exercises in display order.
func (s *routineService) GetRoutine(ctx context.Context, id uint) (*model.RoutineWithExercises, error) {
	routine, err := s.routineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exercises, err := s.routineRepo.ListExercisesByRoutine(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	return &model.RoutineWithExercises{
		Routine:   *routine,
		Exercises: exercises,
	}, nil
}
