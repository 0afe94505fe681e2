package service

import (
	"context"
	"fmt"

	"gympulse/internal/model"
	"gympulse/internal/repository"
)

// Default nutrition targets assigned when a member first opens the
// nutrition view.
const (
	defaultDailyCalories     = 2100
	defaultProteinPercentage = 30
	defaultCarbsPercentage   = 50
	defaultFatsPercentage    = 20
	defaultWaterIntake       = 2000 // ml
)

// MemberService serves per-member progress tracking and nutrition goals.
type MemberService interface {
	ListProgress(ctx context.Context, userID uint) ([]model.Progress, error)
	RecordProgress(ctx context.Context, entry *model.Progress) (*model.Progress, error)
	GetNutritionGoal(ctx context.Context, userID uint) (*model.NutritionGoal, error)
	// SetNutritionGoal creates or replaces the member's goal; created reports
	// whether a new record was made rather than an existing one replaced.
	SetNutritionGoal(ctx context.Context, goal *model.NutritionGoal) (result *model.NutritionGoal, created bool, err error)
}

type memberService struct {
	progressRepo  repository.ProgressRepository
	nutritionRepo repository.NutritionRepository
}

// NewMemberService creates a new member service.
func NewMemberService(progressRepo repository.ProgressRepository, nutritionRepo repository.NutritionRepository) MemberService {
	return &memberService{
		progressRepo:  progressRepo,
		nutritionRepo: nutritionRepo,
	}
}

// ListProgress returns the member's progress entries.
func (s *memberService) ListProgress(ctx context.Context, userID uint) ([]model.Progress, error) {
	return s.progressRepo.ListByUser(ctx, userID)
}

// RecordProgress stores a new progress entry for the member.
func (s *memberService) RecordProgress(ctx context.Context, entry *model.Progress) (*model.Progress, error) {
	if err := s.progressRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create progress: %w", err)
	}
	return entry, nil
}

// GetNutritionGoal returns the member's nutrition goal, creating the default
// goal on first access.
func (s *memberService) GetNutritionGoal(ctx context.Context, userID uint) (*model.NutritionGoal, error) {
	goal, err := s.nutritionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find nutrition goal: %w", err)
	}
	if goal != nil {
		return goal, nil
	}

	goal = &model.NutritionGoal{
		UserID:            userID,
		DailyCalories:     defaultDailyCalories,
		ProteinPercentage: defaultProteinPercentage,
		CarbsPercentage:   defaultCarbsPercentage,
		FatsPercentage:    defaultFatsPercentage,
		WaterIntake:       defaultWaterIntake,
	}
	if err := s.nutritionRepo.Upsert(ctx, goal); err != nil {
		return nil, fmt.Errorf("create default nutrition goal: %w", err)
	}
	return goal, nil
}

// SetNutritionGoal creates or replaces the member's nutrition goal.
func (s *memberService) SetNutritionGoal(ctx context.Context, goal *model.NutritionGoal) (*model.NutritionGoal, bool, error) {
	existing, err := s.nutritionRepo.FindByUser(ctx, goal.UserID)
	if err != nil {
		return nil, false, fmt.Errorf("find nutrition goal: %w", err)
	}
	if err := s.nutritionRepo.Upsert(ctx, goal); err != nil {
		return nil, false, fmt.Errorf("upsert nutrition goal: %w", err)
	}
	return goal, existing == nil, nil
}
