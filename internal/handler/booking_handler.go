package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gympulse/internal/errors"
	"gympulse/internal/service"
)

// BookingHandler handles class booking endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest represents a class booking request.
type CreateBookingRequest struct {
	ClassID uint `json:"classId" validate:"required"`
}

// SuccessResponse is the body for operations that only report success.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ListBookings godoc
// @Summary List the member's bookings with class details
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.BookingWithClass
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingService.ListBookings(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, bookings)
}

// CreateBooking godoc
// @Summary Book a spot in a class
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBookingRequest true "Booking data"
// @Success 201 {object} model.Booking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookingService.BookClass(c.Request().Context(), userID, req.ClassID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, booking)
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.bookingService.CancelBooking(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
