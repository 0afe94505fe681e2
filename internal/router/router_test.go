package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gympulse/internal/auth"
	"gympulse/internal/config"
	"gympulse/internal/handler"
	"gympulse/internal/model"
	"gympulse/internal/repository"
	"gympulse/internal/service"
)

// newTestServer wires the whole stack over a fresh store with one bookable
// class and returns a valid session token for a registered member.
func newTestServer(t *testing.T) (*echo.Echo, string) {
	t.Helper()

	cfg := &config.Config{JWTSecret: "test-secret", ServerPort: "0"}

	store := repository.NewStore()
	userRepo := repository.NewUserRepository(store)
	classRepo := repository.NewClassRepository(store)
	bookingRepo := repository.NewBookingRepository(store)
	routineRepo := repository.NewRoutineRepository(store)
	trainerRepo := repository.NewTrainerRepository(store)
	progressRepo := repository.NewProgressRepository(store)
	nutritionRepo := repository.NewNutritionRepository(store)
	notificationRepo := repository.NewNotificationRepository(store)

	require.NoError(t, classRepo.Create(context.Background(), &model.Class{
		Name:      "Yoga Basics",
		Capacity:  15,
		SpotsLeft: 5,
	}))

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)

	e := echo.New()
	Register(
		e,
		cfg,
		handler.NewAuthHandler(authService),
		handler.NewClassHandler(service.NewClassService(classRepo, trainerRepo, nil)),
		handler.NewRoutineHandler(service.NewRoutineService(routineRepo, nil)),
		handler.NewBookingHandler(service.NewBookingService(classRepo, bookingRepo, notificationRepo, nil)),
		handler.NewMemberHandler(service.NewMemberService(progressRepo, nutritionRepo)),
		handler.NewNotificationHandler(service.NewNotificationService(notificationRepo)),
	)

	_, token, err := authService.Register(context.Background(), "alice", "password123", "Alice Example", "alice@example.com")
	require.NoError(t, err)

	return e, token
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_ClassesArePublic(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/classes", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var classes []model.Class
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &classes))
	require.Len(t, classes, 1)
	assert.Equal(t, "Yoga Basics", classes[0].Name)
}

func TestRouter_BookingsRequireToken(t *testing.T) {
	e, token := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/bookings", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/bookings", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/bookings", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_BookingFlow(t *testing.T) {
	e, token := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/bookings", token, `{"classId":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var booking model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.Equal(t, uint(1), booking.ClassID)

	// The seat decrement shows up in the public schedule.
	rec = doJSON(e, http.MethodGet, "/api/classes", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var classes []model.Class
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &classes))
	require.Len(t, classes, 1)
	assert.Equal(t, 4, classes[0].SpotsLeft)

	// Booking emitted a confirmation notification.
	rec = doJSON(e, http.MethodGet, "/api/notifications", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var notifications []model.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notifications))
	require.Len(t, notifications, 1)
	assert.Equal(t, "Booking confirmed", notifications[0].Title)

	rec = doJSON(e, http.MethodDelete, "/api/bookings/1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = doJSON(e, http.MethodDelete, "/api/bookings/1", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_BookUnknownClass(t *testing.T) {
	e, token := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/bookings", token, `{"classId":99}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RegisterValidation(t *testing.T) {
	e, _ := newTestServer(t)

	// Password below the 8 character minimum.
	rec := doJSON(e, http.MethodPost, "/api/auth/register", "", `{"username":"bob","password":"short","fullName":"Bob","email":"bob@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Duplicate username.
	rec = doJSON(e, http.MethodPost, "/api/auth/register", "", `{"username":"alice","password":"password123","fullName":"Alice Two","email":"alice2@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Login(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/login", "", `{"username":"alice","password":"password123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/auth/login", "", `{"username":"alice","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
