package service

import (
	"context"

	"gympulse/internal/model"
	"gympulse/internal/repository"
)

// NotificationService serves a member's notification feed.
type NotificationService interface {
	ListNotifications(ctx context.Context, userID uint) ([]model.Notification, error)
	MarkRead(ctx context.Context, id uint) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// ListNotifications returns the user's notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, userID uint) ([]model.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID)
}

// MarkRead flags a notification as read.
func (s *notificationService) MarkRead(ctx context.Context, id uint) error {
	return s.notificationRepo.MarkRead(ctx, id)
}
