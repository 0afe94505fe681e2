package repository

import (
	"context"
	"sort"
	"time"

	"gympulse/internal/errors"
	"gympulse/internal/model"
)

// NotificationRepository defines notification persistence operations.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListByUser(ctx context.Context, userID uint) ([]model.Notification, error)
	MarkRead(ctx context.Context, id uint) error
}

type notificationRepository struct {
	store *Store
}

// NewNotificationRepository creates a notification repository over the shared store.
func NewNotificationRepository(store *Store) NotificationRepository {
	return &notificationRepository{store: store}
}

// Create stores a new unread notification, assigning its id and creation time.
func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	notification.ID = s.nextNotificationID
	s.nextNotificationID++
	notification.CreatedAt = time.Now().UTC()
	notification.IsRead = false

	stored := *notification
	s.notifications[notification.ID] = &stored
	return nil
}

// ListByUser returns the user's notifications, newest first.
func (r *notificationRepository) ListByUser(ctx context.Context, userID uint) ([]model.Notification, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var notifications []model.Notification
	for _, notification := range s.notifications {
		if notification.UserID == userID {
			notifications = append(notifications, *notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		if notifications[i].CreatedAt.Equal(notifications[j].CreatedAt) {
			return notifications[i].ID > notifications[j].ID
		}
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

// MarkRead sets the notification's read flag. This is the only mutation a
// notification supports.
func (r *notificationRepository) MarkRead(ctx context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.notifications[id]
	if !ok {
		return errors.ErrNotificationNotFound
	}
	notification.IsRead = true
	return nil
}
