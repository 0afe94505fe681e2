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

// The schedule is the hottest public read; it is cached briefly and the
// booking service invalidates it whenever spotsLeft changes.
const classCacheTTL = time.Minute

// ClassService serves the public class schedule and trainer listing.
type ClassService interface {
	ListClasses(ctx context.Context) ([]model.Class, error)
	ListTrainers(ctx context.Context) ([]model.Trainer, error)
}

type classService struct {
	classRepo   repository.ClassRepository
	trainerRepo repository.TrainerRepository
	cache       *cache.Client
}

// NewClassService creates a new class service.
func NewClassService(classRepo repository.ClassRepository, trainerRepo repository.TrainerRepository, cacheClient *cache.Client) ClassService {
	return &classService{
		classRepo:   classRepo,
		trainerRepo: trainerRepo,
		cache:       cacheClient,
	}
}

// ListClasses returns the class schedule, cache first.
func (s *classService) ListClasses(ctx context.Context) ([]model.Class, error) {
	if data, _ := s.cache.Get(ctx, cache.KeyClasses); data != nil {
		var cached []model.Class
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	if payload, err := json.Marshal(classes); err == nil {
		_ = s.cache.Set(ctx, cache.KeyClasses, payload, classCacheTTL)
	}

	return classes, nil
}

// ListTrainers returns all trainers.
func (s *classService) ListTrainers(ctx context.Context) ([]model.Trainer, error) {
	return s.trainerRepo.List(ctx)
}
