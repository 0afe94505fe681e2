package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gympulse/internal/errors"
	"gympulse/internal/service"
)

// ClassHandler handles the public class schedule and trainer endpoints.
type ClassHandler struct {
	classService service.ClassService
}

// NewClassHandler creates a new class handler.
func NewClassHandler(classService service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// ListClasses godoc
// @Summary List scheduled classes
// @Tags classes
// @Produce json
// @Success 200 {array} model.Class
// @Failure 500 {object} errors.ErrorResponse
// @Router /classes [get]
func (h *ClassHandler) ListClasses(c echo.Context) error {
	classes, err := h.classService.ListClasses(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, classes)
}

// ListTrainers godoc
// @Summary List trainers
// @Tags trainers
// @Produce json
// @Success 200 {array} model.Trainer
// @Failure 500 {object} errors.ErrorResponse
// @Router /trainers [get]
func (h *ClassHandler) ListTrainers(c echo.Context) error {
	trainers, err := h.classService.ListTrainers(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, trainers)
}
