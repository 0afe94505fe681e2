package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gympulse/internal/errors"
	"gympulse/internal/model"
	"gympulse/internal/service"
)

// MemberHandler handles progress tracking and nutrition goal endpoints.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// RecordProgressRequest represents a progress entry submission.
type RecordProgressRequest struct {
	Weight          int `json:"weight" validate:"gte=0"`
	BodyFat         int `json:"bodyFat" validate:"gte=0,lte=100"`
	ClassesAttended int `json:"classesAttended" validate:"gte=0"`
	Calories        int `json:"calories" validate:"gte=0"`
}

// NutritionGoalRequest represents a nutrition goal submission.
type NutritionGoalRequest struct {
	DailyCalories     int `json:"dailyCalories" validate:"gte=0"`
	ProteinPercentage int `json:"proteinPercentage" validate:"gte=0,lte=100"`
	CarbsPercentage   int `json:"carbsPercentage" validate:"gte=0,lte=100"`
	FatsPercentage    int `json:"fatsPercentage" validate:"gte=0,lte=100"`
	WaterIntake       int `json:"waterIntake" validate:"gte=0"`
}

// ListProgress godoc
// @Summary List the member's progress entries
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Progress
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /progress [get]
func (h *MemberHandler) ListProgress(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	entries, err := h.memberService.ListProgress(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, entries)
}

// RecordProgress godoc
// @Summary Record a progress entry
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordProgressRequest true "Progress data"
// @Success 201 {object} model.Progress
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /progress [post]
func (h *MemberHandler) RecordProgress(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req RecordProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.memberService.RecordProgress(c.Request().Context(), &model.Progress{
		UserID:          userID,
		Weight:          req.Weight,
		BodyFat:         req.BodyFat,
		ClassesAttended: req.ClassesAttended,
		Calories:        req.Calories,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, entry)
}

// GetNutritionGoal godoc
// @Summary Get the member's nutrition goal, creating the default on first access
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.NutritionGoal
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /nutrition [get]
func (h *MemberHandler) GetNutritionGoal(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	goal, err := h.memberService.GetNutritionGoal(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, goal)
}

// SetNutritionGoal godoc
// @Summary Create or update the member's nutrition goal
// @Tags nutrition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NutritionGoalRequest true "Nutrition goal data"
// @Success 200 {object} model.NutritionGoal
// @Success 201 {object} model.NutritionGoal
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /nutrition [post]
func (h *MemberHandler) SetNutritionGoal(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req NutritionGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	goal, created, err := h.memberService.SetNutritionGoal(c.Request().Context(), &model.NutritionGoal{
		UserID:            userID,
		DailyCalories:     req.DailyCalories,
		ProteinPercentage: req.ProteinPercentage,
		CarbsPercentage:   req.CarbsPercentage,
		FatsPercentage:    req.FatsPercentage,
		WaterIntake:       req.WaterIntake,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, goal)
}
