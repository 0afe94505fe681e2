package repository

import (
	"context"
	"sort"
	"time"

	"gympulse/internal/errors"
	"gympulse/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	ListByUser(ctx context.Context, userID uint) ([]model.Booking, error)
	Delete(ctx context.Context, id uint) (*model.Booking, error)
}

type bookingRepository struct {
	store *Store
}

// NewBookingRepository creates a booking repository over the shared store.
func NewBookingRepository(store *Store) BookingRepository {
	return &bookingRepository{store: store}
}

// Create stores a new booking, assigning its id and creation time.
func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = s.nextBookingID
	s.nextBookingID++
	booking.CreatedAt = time.Now().UTC()

	stored := *booking
	s.bookings[booking.ID] = &stored
	return nil
}

// ListByUser returns all bookings owned by the user, ordered by id.
func (r *bookingRepository) ListByUser(ctx context.Context, userID uint) ([]model.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []model.Booking
	for _, booking := range s.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, *booking)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

// Delete removes a booking and returns it, so the caller can release the
// spot it held. Fails with ErrBookingNotFound if the id is unknown.
func (r *bookingRepository) Delete(ctx context.Context, id uint) (*model.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, errors.ErrBookingNotFound
	}
	delete(s.bookings, id)

	copied := *booking
	return &copied, nil
}
