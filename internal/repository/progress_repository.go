package repository

import (
	"context"
	"sort"
	"time"

	"gympulse/internal/model"
)

// ProgressRepository defines training progress persistence operations.
type ProgressRepository interface {
	Create(ctx context.Context, entry *model.Progress) error
	ListByUser(ctx context.Context, userID uint) ([]model.Progress, error)
}

type progressRepository struct {
	store *Store
}

// NewProgressRepository creates a progress repository over the shared store.
func NewProgressRepository(store *Store) ProgressRepository {
	return &progressRepository{store: store}
}

// Create stores a new progress entry, assigning its id and date.
func (r *progressRepository) Create(ctx context.Context, entry *model.Progress) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextProgressID
	s.nextProgressID++
	entry.Date = time.Now().UTC()

	stored := *entry
	s.progress[entry.ID] = &stored
	return nil
}

// ListByUser returns the user's progress entries ordered by id.
func (r *progressRepository) ListByUser(ctx context.Context, userID uint) ([]model.Progress, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []model.Progress
	for _, entry := range s.progress {
		if entry.UserID == userID {
			entries = append(entries, *entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}
