package repository

import (
	"context"

	"gympulse/internal/errors"
	"gympulse/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct {
	store *Store
}

// NewUserRepository creates a user repository over the shared store.
func NewUserRepository(store *Store) UserRepository {
	return &userRepository{store: store}
}

// Create stores a new user, assigning its id. The uniqueness check and the
// insert happen under the same write lock, so two concurrent registrations
// for one username cannot both succeed.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return errors.ErrUsernameTaken
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++

	stored := *user
	s.users[user.ID] = &stored
	return nil
}

// FindByID finds a user by id.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// FindByUsername finds a user by username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.ErrUserNotFound
}
