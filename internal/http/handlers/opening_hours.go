package handlers

import (
	"errors"
	"net/http"

	"garagehub/internal/hours"
	"garagehub/pkg/models"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// OpeningHoursHandler handles the weekly schedule read and replace
type OpeningHoursHandler struct {
	garages  GarageStore
	schedule hours.ScheduleStore
}

// NewOpeningHoursHandler creates a new opening hours handler
func NewOpeningHoursHandler(garages GarageStore, schedule hours.ScheduleStore) *OpeningHoursHandler {
	return &OpeningHoursHandler{garages: garages, schedule: schedule}
}

// ReplaceHoursResponse is the write result: the stored week plus any
// advisory warnings from the same-day sanity check
type ReplaceHoursResponse struct {
	Hours    []models.OpeningHours `json:"hours"`
	Warnings []string              `json:"warnings,omitempty"`
}

// List godoc
// @Summary Get opening hours
// @Description Get the full 7-day schedule; days absent from storage are returned closed
// @Tags opening-hours
// @Accept json
// @Produce json
// @Param slug path string true "Garage slug"
// @Success 200 {array} models.OpeningHours
// @Failure 404 {object} map[string]string
// @Router /garages/{slug}/opening-hours [get]
func (h *OpeningHoursHandler) List(c echo.Context) error {
	garage, err := h.garages.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Garage not found"})
		}
		log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to load garage")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch opening hours"})
	}

	stored, err := h.schedule.ReadSchedule(garage.ID)
	if err != nil {
		log.Error().Err(err).Str("slug", garage.Slug).Msg("Failed to read schedule")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch opening hours"})
	}

	return c.JSON(http.StatusOK, hours.FillWeek(garage.ID, stored))
}

// Replace godoc
// @Summary Replace opening hours
// @Description Validate and atomically replace the full 7-day schedule (admin, secret gated)
// @Tags opening-hours
// @Accept json
// @Produce json
// @Param slug path string true "Garage slug"
// @Param request body models.ReplaceHoursRequest true "Seven day entries"
// @Success 200 {object} ReplaceHoursResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /garages/{slug}/opening-hours [post]
func (h *OpeningHoursHandler) Replace(c echo.Context) error {
	garage, err := h.garages.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Garage not found"})
		}
		log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to load garage")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update opening hours"})
	}

	var req models.ReplaceHoursRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if verr := hours.Validate(req.Hours); verr != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": verr.Error()})
	}

	stored, err := h.schedule.ReplaceSchedule(garage.ID, hours.BuildWeek(garage.ID, req.Hours))
	if err != nil {
		log.Error().Err(err).Str("slug", garage.Slug).Msg("Failed to replace schedule")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update opening hours"})
	}

	return c.JSON(http.StatusOK, ReplaceHoursResponse{
		Hours:    stored,
		Warnings: hours.AdvisoryWarnings(req.Hours),
	})
}
