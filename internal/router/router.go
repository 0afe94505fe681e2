package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gympulse/internal/config"
	"gympulse/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	classHandler *handler.ClassHandler,
	routineHandler *handler.RoutineHandler,
	bookingHandler *handler.BookingHandler,
	memberHandler *handler.MemberHandler,
	notificationHandler *handler.NotificationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/classes", classHandler.ListClasses)
	api.GET("/trainers", classHandler.ListTrainers)
	api.GET("/routines", routineHandler.ListRoutines)
	api.GET("/routines/:id", routineHandler.GetRoutine)

	// Secured routes (require a bearer session token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	// Booking routes
	secured.GET("/bookings", bookingHandler.ListBookings)
	secured.POST("/bookings", bookingHandler.CreateBooking)
	secured.DELETE("/bookings/:id", bookingHandler.CancelBooking)

	// Notification routes
	secured.GET("/notifications", notificationHandler.ListNotifications)
	secured.PATCH("/notifications/:id/read", notificationHandler.MarkNotificationRead)

	// Progress and nutrition routes
	secured.GET("/progress", memberHandler.ListProgress)
	secured.POST("/progress", memberHandler.RecordProgress)
	secured.GET("/nutrition", memberHandler.GetNutritionGoal)
	secured.POST("/nutrition", memberHandler.SetNutritionGoal)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
