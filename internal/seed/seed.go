// Package seed loads the demonstration data the application starts with.
// The store is memory-resident, so this runs on every process start and the
// data is discarded on exit.
package seed

import (
	"context"
	"fmt"
	"time"

	"gympulse/internal/model"
	"gympulse/internal/repository"
)

// Load populates the store with demo routines, classes, and trainers.
func Load(
	ctx context.Context,
	routineRepo repository.RoutineRepository,
	classRepo repository.ClassRepository,
	trainerRepo repository.TrainerRepository,
) error {
	if err := loadRoutines(ctx, routineRepo); err != nil {
		return err
	}
	if err := loadClasses(ctx, classRepo); err != nil {
		return err
	}
	return loadTrainers(ctx, trainerRepo)
}

func loadRoutines(ctx context.Context, repo repository.RoutineRepository) error {
	routines := []*model.Routine{
		{
			Name:        "Upper Body Strength",
			Description: "Complete upper body workout",
			Duration:    45,
			Difficulty:  "Intermediate",
			Category:    "Strength",
			ImageURL:    "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			Name:        "Core Workout",
			Description: "Strengthen your core muscles",
			Duration:    30,
			Difficulty:  "Beginner",
			Category:    "Strength",
			ImageURL:    "https://images.unsplash.com/photo-1594737625785-a6cbdabd333c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			Name:        "Cardio Blast",
			Description: "High intensity cardio workout",
			Duration:    50,
			Difficulty:  "Advanced",
			Category:    "Cardio",
			ImageURL:    "https://images.unsplash.com/photo-1599058945522-28d584b6f0ff?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
	}
	for _, routine := range routines {
		if err := repo.Create(ctx, routine); err != nil {
			return fmt.Errorf("seed routine %q: %w", routine.Name, err)
		}
	}

	upperBodyID := routines[0].ID
	exercises := []*model.Exercise{
		{RoutineID: upperBodyID, Name: "Bench Press", Sets: 3, Reps: 12, Order: 1},
		{RoutineID: upperBodyID, Name: "Shoulder Press", Sets: 3, Reps: 10, Order: 2},
		{RoutineID: upperBodyID, Name: "Tricep Extensions", Sets: 3, Reps: 15, Order: 3},
	}
	for _, exercise := range exercises {
		if err := repo.CreateExercise(ctx, exercise); err != nil {
			return fmt.Errorf("seed exercise %q: %w", exercise.Name, err)
		}
	}
	return nil
}

func loadClasses(ctx context.Context, repo repository.ClassRepository) error {
	now := time.Now().UTC()
	tomorrow := now.AddDate(0, 0, 1)
	dayAfter := now.AddDate(0, 0, 2)

	classes := []*model.Class{
		{
			Name:        "Yoga Basics",
			Description: "Beginner friendly yoga class",
			StartTime:   at(tomorrow, 10, 30),
			EndTime:     at(tomorrow, 11, 30),
			Instructor:  "Sarah Johnson",
			Location:    "Studio 2",
			Capacity:    15,
			SpotsLeft:   5,
		},
		{
			Name:        "HIIT Training",
			Description: "High intensity interval training",
			StartTime:   at(dayAfter, 18, 0),
			EndTime:     at(dayAfter, 19, 0),
			Instructor:  "Mike Torres",
			Location:    "Studio 1",
			Capacity:    12,
			SpotsLeft:   2,
		},
		{
			Name:        "Spin Class",
			Description: "High energy cycling workout",
			StartTime:   at(dayAfter, 19, 30),
			EndTime:     at(dayAfter, 20, 30),
			Instructor:  "Jessica Kim",
			Location:    "Studio 3",
			Capacity:    20,
			SpotsLeft:   0,
		},
	}
	for _, class := range classes {
		if err := repo.Create(ctx, class); err != nil {
			return fmt.Errorf("seed class %q: %w", class.Name, err)
		}
	}
	return nil
}

func loadTrainers(ctx context.Context, repo repository.TrainerRepository) error {
	trainers := []*model.Trainer{
		{
			Name:        "Mike Torres",
			Specialty:   "Strength & Conditioning",
			ImageURL:    "https://images.unsplash.com/photo-1568602471122-7832951cc4c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=150&h=150&q=80",
			IsAvailable: true,
		},
		{
			Name:        "Sarah Johnson",
			Specialty:   "Yoga & Flexibility",
			ImageURL:    "https://images.unsplash.com/photo-1534528741775-53994a69daeb?ixlib=rb-1.2.1&auto=format&fit=crop&w=150&h=150&q=80",
			IsAvailable: true,
		},
	}
	for _, trainer := range trainers {
		if err := repo.Create(ctx, trainer); err != nil {
			return fmt.Errorf("seed trainer %q: %w", trainer.Name, err)
		}
	}
	return nil
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}
