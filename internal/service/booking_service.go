package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gympulse/internal/cache"
	"gympulse/internal/errors"
	"gympulse/internal/model"
	"gympulse/internal/repository"
)

// BookingService orchestrates class bookings: capacity bookkeeping, booking
// records, and the confirmation notification emitted on success.
type BookingService interface {
	BookClass(ctx context.Context, userID, classID uint) (*model.Booking, error)
	CancelBooking(ctx context.Context, id uint) error
	ListBookings(ctx context.Context, userID uint) ([]model.BookingWithClass, error)
}

type bookingService struct {
	classRepo        repository.ClassRepository
	bookingRepo      repository.BookingRepository
	notificationRepo repository.NotificationRepository
	cache            *cache.Client
}

// NewBookingService creates a new booking service.
func NewBookingService(
	classRepo repository.ClassRepository,
	bookingRepo repository.BookingRepository,
	notificationRepo repository.NotificationRepository,
	cache *cache.Client,
) BookingService {
	return &bookingService{
		classRepo:        classRepo,
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		cache:            cache,
	}
}

// BookClass reserves a seat in the class for the user. The capacity check
// and decrement are a single atomic operation on the class repository; when
// the class is full no booking is created and the counter is untouched. A
// confirmation notification is emitted for the booking user.
func (s *bookingService) BookClass(ctx context.Context, userID, classID uint) (*model.Booking, error) {
	class, err := s.classRepo.ReserveSpot(ctx, classID)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		UserID:  userID,
		ClassID: classID,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		// Give the seat back so the counter stays consistent.
		_ = s.classRepo.ReleaseSpot(ctx, classID)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	notification := &model.Notification{
		UserID:  userID,
		Title:   "Booking confirmed",
		Message: fmt.Sprintf("Your %s class has been confirmed", class.Name),
		Type:    model.NotificationConfirmation,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	// spotsLeft changed, so the cached schedule is stale.
	_ = s.cache.Delete(ctx, cache.KeyClasses)

	return booking, nil
}

// CancelBooking removes a booking and returns its seat to the class. The
// release is skipped when the class no longer exists.
func (s *bookingService) CancelBooking(ctx context.Context, id uint) error {
	booking, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if err := s.classRepo.ReleaseSpot(ctx, booking.ClassID); err != nil {
		return fmt.Errorf("release spot: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.KeyClasses)

	return nil
}

// ListBookings returns the user's bookings enriched with class details for
// display. A booking whose class has been removed is returned with a nil
// class rather than dropped.
func (s *bookingService) ListBookings(ctx context.Context, userID uint) ([]model.BookingWithClass, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	enriched := make([]model.BookingWithClass, 0, len(bookings))
	for _, booking := range bookings {
		class, err := s.classRepo.FindByID(ctx, booking.ClassID)
		if err != nil && !stderrors.Is(err, errors.ErrClassNotFound) {
			return nil, fmt.Errorf("find class %d: %w", booking.ClassID, err)
		}
		enriched = append(enriched, model.BookingWithClass{
			Booking: booking,
			Class:   class,
		})
	}
	return enriched, nil
}
