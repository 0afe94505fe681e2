package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gympulse/internal/errors"
	"gympulse/internal/service"
)

// RoutineHandler handles workout routine endpoints.
type RoutineHandler struct {
	routineService service.RoutineService
}

// NewRoutineHandler creates a new routine handler.
func NewRoutineHandler(routineService service.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

// ListRoutines godoc
// @Summary List workout routines
// @Tags routines
// @Produce json
// @Success 200 {array} model.Routine
// @Failure 500 {object} errors.ErrorResponse
// @Router /routines [get]
func (h *RoutineHandler) ListRoutines(c echo.Context) error {
	routines, err := h.routineService.ListRoutines(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, routines)
}

// GetRoutine godoc
// @Summary Get a routine with its exercises
// @Tags routines
// @Produce json
// @Param id path int true "Routine ID"
// @Success 200 {object} model.RoutineWithExercises
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /routines/{id} [get]
func (h *RoutineHandler) GetRoutine(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	routine, err := h.routineService.GetRoutine(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, routine)
}
