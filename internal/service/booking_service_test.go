package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gympulse/internal/errors"
	"gympulse/internal/model"
	"gympulse/internal/repository"
)

type bookingFixture struct {
	classRepo        repository.ClassRepository
	bookingRepo      repository.BookingRepository
	notificationRepo repository.NotificationRepository
	service          BookingService
}

// newBookingFixture wires the booking service over a fresh store. The nil
// cache client behaves as a cache that always misses.
func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	store := repository.NewStore()
	f := &bookingFixture{
		classRepo:        repository.NewClassRepository(store),
		bookingRepo:      repository.NewBookingRepository(store),
		notificationRepo: repository.NewNotificationRepository(store),
	}
	f.service = NewBookingService(f.classRepo, f.bookingRepo, f.notificationRepo, nil)
	return f
}

func (f *bookingFixture) addClass(t *testing.T, name string, capacity, spotsLeft int) *model.Class {
	t.Helper()
	class := &model.Class{Name: name, Capacity: capacity, SpotsLeft: spotsLeft}
	require.NoError(t, f.classRepo.Create(context.Background(), class))
	return class
}

func (f *bookingFixture) spotsLeft(t *testing.T, classID uint) int {
	t.Helper()
	class, err := f.classRepo.FindByID(context.Background(), classID)
	require.NoError(t, err)
	return class.SpotsLeft
}

func TestBookingService_BookClass(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	class := f.addClass(t, "Yoga Basics", 15, 5)

	booking, err := f.service.BookClass(ctx, 1, class.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), booking.UserID)
	assert.Equal(t, class.ID, booking.ClassID)
	assert.False(t, booking.CreatedAt.IsZero())

	assert.Equal(t, 4, f.spotsLeft(t, class.ID))

	// A confirmation notification was emitted for the booking user.
	notifications, err := f.notificationRepo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Booking confirmed", notifications[0].Title)
	assert.Equal(t, "Your Yoga Basics class has been confirmed", notifications[0].Message)
	assert.Equal(t, model.NotificationConfirmation, notifications[0].Type)
	assert.False(t, notifications[0].IsRead)
}

func TestBookingService_BookClass_NotFound(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.service.BookClass(context.Background(), 1, 99)
	assert.ErrorIs(t, err, errors.ErrClassNotFound)
	assert.Nil(t, booking)
}

func TestBookingService_BookClass_Full(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	class := f.addClass(t, "Spin Class", 20, 0)

	booking, err := f.service.BookClass(ctx, 1, class.ID)
	assert.ErrorIs(t, err, errors.ErrClassFull)
	assert.Nil(t, booking)

	// No booking record, no notification, counter untouched.
	assert.Equal(t, 0, f.spotsLeft(t, class.ID))
	bookings, err := f.bookingRepo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	notifications, err := f.notificationRepo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestBookingService_CancelBooking_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	class := f.addClass(t, "Yoga Basics", 15, 5)

	err := f.service.CancelBooking(ctx, 99)
	assert.ErrorIs(t, err, errors.ErrBookingNotFound)
	assert.Equal(t, 5, f.spotsLeft(t, class.ID))
}

// Booking then immediately cancelling restores spotsLeft and leaves no
// booking record.
func TestBookingService_BookThenCancel_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	class := f.addClass(t, "HIIT Training", 12, 2)

	booking, err := f.service.BookClass(ctx, 1, class.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.spotsLeft(t, class.ID))

	require.NoError(t, f.service.CancelBooking(ctx, booking.ID))
	assert.Equal(t, 2, f.spotsLeft(t, class.ID))

	bookings, err := f.bookingRepo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

// Capacity-1 contention: the second booking fails while the seat is held and
// succeeds once it is released.
func TestBookingService_LastSpotContention(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	class := f.addClass(t, "Pilates", 1, 1)

	const userA, userB = 1, 2

	bookingA, err := f.service.BookClass(ctx, userA, class.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, f.spotsLeft(t, class.ID))

	notifications, err := f.notificationRepo.ListByUser(ctx, userA)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	_, err = f.service.BookClass(ctx, userB, class.ID)
	assert.ErrorIs(t, err, errors.ErrClassFull)
	assert.Equal(t, 0, f.spotsLeft(t, class.ID))

	require.NoError(t, f.service.CancelBooking(ctx, bookingA.ID))
	assert.Equal(t, 1, f.spotsLeft(t, class.ID))

	bookingB, err := f.service.BookClass(ctx, userB, class.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(userB), bookingB.UserID)
	assert.Equal(t, 0, f.spotsLeft(t, class.ID))
}

func TestBookingService_ListBookings_EnrichedWithClass(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	yoga := f.addClass(t, "Yoga Basics", 15, 5)
	hiit := f.addClass(t, "HIIT Training", 12, 2)

	_, err := f.service.BookClass(ctx, 1, yoga.ID)
	require.NoError(t, err)
	_, err = f.service.BookClass(ctx, 1, hiit.ID)
	require.NoError(t, err)
	_, err = f.service.BookClass(ctx, 2, yoga.ID)
	require.NoError(t, err)

	bookings, err := f.service.ListBookings(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, yoga.ID, bookings[0].ClassID)
	require.NotNil(t, bookings[0].Class)
	assert.Equal(t, "Yoga Basics", bookings[0].Class.Name)
	assert.Equal(t, hiit.ID, bookings[1].ClassID)
	require.NotNil(t, bookings[1].Class)
	assert.Equal(t, "HIIT Training", bookings[1].Class.Name)
}
