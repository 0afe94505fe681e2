// Package repository implements the domain store: in-memory collections for
// every entity type behind per-entity repository interfaces. A single Store
// is created per process and shared by all repositories; tests get isolation
// by constructing a fresh Store.
package repository

import (
	"sync"

	"gympulse/internal/model"
)

// Store holds every entity collection and its id counter. All access goes
// through the repositories, which serialize multi-step mutations (the
// booking capacity check-then-decrement in particular) on the shared mutex.
// Identifiers are monotonically increasing per entity type and never reused.
type Store struct {
	mu sync.RWMutex

	users          map[uint]*model.User
	classes        map[uint]*model.Class
	bookings       map[uint]*model.Booking
	routines       map[uint]*model.Routine
	exercises      map[uint]*model.Exercise
	trainers       map[uint]*model.Trainer
	progress       map[uint]*model.Progress
	nutritionGoals map[uint]*model.NutritionGoal
	notifications  map[uint]*model.Notification

	nextUserID          uint
	nextClassID         uint
	nextBookingID       uint
	nextRoutineID       uint
	nextExerciseID      uint
	nextTrainerID       uint
	nextProgressID      uint
	nextNutritionGoalID uint
	nextNotificationID  uint
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:          make(map[uint]*model.User),
		classes:        make(map[uint]*model.Class),
		bookings:       make(map[uint]*model.Booking),
		routines:       make(map[uint]*model.Routine),
		exercises:      make(map[uint]*model.Exercise),
		trainers:       make(map[uint]*model.Trainer),
		progress:       make(map[uint]*model.Progress),
		nutritionGoals: make(map[uint]*model.NutritionGoal),
		notifications:  make(map[uint]*model.Notification),

		nextUserID:          1,
		nextClassID:         1,
		nextBookingID:       1,
		nextRoutineID:       1,
		nextExerciseID:      1,
		nextTrainerID:       1,
		nextProgressID:      1,
		nextNutritionGoalID: 1,
		nextNotificationID:  1,
	}
}
