package handlers

import (
	"errors"
	"net/http"
	"time"

	"garagehub/internal/hours"
	"garagehub/pkg/models"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GarageHandler handles the public garage profile and its admin updates
type GarageHandler struct {
	garages  GarageStore
	schedule hours.ScheduleStore
}

// NewGarageHandler creates a new garage handler
func NewGarageHandler(garages GarageStore, schedule hours.ScheduleStore) *GarageHandler {
	return &GarageHandler{garages: garages, schedule: schedule}
}

// GetBySlug godoc
// @Summary Get garage profile
// @Description Get the public garage profile with opening hours, services, reviews and live open status
// @Tags garages
// @Accept json
// @Produce json
// @Param slug path string true "Garage slug"
// @Success 200 {object} models.GarageWithDetails
// @Failure 404 {object} map[string]string
// @Router /garages/{slug} [get]
func (h *GarageHandler) GetBySlug(c echo.Context) error {
	garage, err := h.garages.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Garage not found"})
		}
		log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to load garage")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load garage"})
	}

	stored, err := h.schedule.ReadSchedule(garage.ID)
	if err != nil {
		log.Error().Err(err).Str("slug", garage.Slug).Msg("Failed to load opening hours")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load garage"})
	}
	week := hours.FillWeek(garage.ID, stored)

	services, err := h.garages.ListServices(garage.ID)
	if err != nil {
		log.Error().Err(err).Str("slug", garage.Slug).Msg("Failed to load services")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load garage"})
	}

	reviews, err := h.garages.ListReviews(garage.ID)
	if err != nil {
		log.Error().Err(err).Str("slug", garage.Slug).Msg("Failed to load reviews")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load garage"})
	}

	// Open status is recomputed on every request; stale answers are
	// user-visible, so it is never cached.
	return c.JSON(http.StatusOK, models.GarageWithDetails{
		Garage:       *garage,
		OpeningHours: week,
		Services:     services,
		Reviews:      reviews,
		IsOpenNow:    hours.IsOpenNow(week, garage.Timezone),
	})
}

// Update godoc
// @Summary Update garage profile
// @Description Update the garage profile fields (admin, secret gated)
// @Tags garages
// @Accept json
// @Produce json
// @Param slug path string true "Garage slug"
// @Param request body models.UpdateGarageRequest true "Fields to update"
// @Success 200 {object} models.Garage
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /garages/{slug} [put]
func (h *GarageHandler) Update(c echo.Context) error {
	garage, err := h.garages.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Garage not found"})
		}
		log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to load garage")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load garage"})
	}

	var req models.UpdateGarageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid timezone: " + *req.Timezone})
		}
		garage.Timezone = *req.Timezone
	}

	applyGarageUpdate(garage, &req)

	if err := h.garages.Update(garage); err != nil {
		log.Error().Err(err).Str("slug", garage.Slug).Msg("Failed to update garage")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update garage"})
	}

	return c.JSON(http.StatusOK, garage)
}

func applyGarageUpdate(garage *models.Garage, req *models.UpdateGarageRequest) {
	if req.BusinessName != nil {
		garage.BusinessName = *req.BusinessName
	}
	if req.OneLineDescription != nil {
		garage.OneLineDescription = *req.OneLineDescription
	}
	if req.AboutText != nil {
		garage.AboutText = *req.AboutText
	}
	if req.HeroImageURL != nil {
		garage.HeroImageURL = *req.HeroImageURL
	}
	if req.AddressLine1 != nil {
		garage.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		garage.AddressLine2 = *req.AddressLine2
	}
	if req.AddressLine3 != nil {
		garage.AddressLine3 = *req.AddressLine3
	}
	if req.AddressLine4 != nil {
		garage.AddressLine4 = *req.AddressLine4
	}
	if req.Postcode != nil {
		garage.Postcode = *req.Postcode
	}
	if req.Phone != nil {
		garage.Phone = *req.Phone
	}
	if req.Email != nil {
		garage.Email = *req.Email
	}
	if req.GoogleReviewsURL != nil {
		garage.GoogleReviewsURL = *req.GoogleReviewsURL
	}
	if req.CallbackContactName != nil {
		garage.CallbackContactName = *req.CallbackContactName
	}
	if req.CallbackContactEmail != nil {
		garage.CallbackContactEmail = *req.CallbackContactEmail
	}
}
