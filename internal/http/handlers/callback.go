package handlers

import (
	"errors"
	"net/http"

	"garagehub/pkg/models"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CallbackHandler handles visitor callback requests
type CallbackHandler struct {
	garages   GarageStore
	callbacks CallbackStore
	notifier  CallbackNotifier
}

// NewCallbackHandler creates a new callback handler. notifier may be
// nil when no email transport is configured.
func NewCallbackHandler(garages GarageStore, callbacks CallbackStore, notifier CallbackNotifier) *CallbackHandler {
	return &CallbackHandler{garages: garages, callbacks: callbacks, notifier: notifier}
}

// Create godoc
// @Summary Request a callback
// @Description Leave a name and phone number; the garage's callback contact is notified by email
// @Tags callbacks
// @Accept json
// @Produce json
// @Param slug path string true "Garage slug"
// @Param request body models.CreateCallbackRequest true "Callback details"
// @Success 201 {object} models.CallbackRequest
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /garages/{slug}/callback-requests [post]
func (h *CallbackHandler) Create(c echo.Context) error {
	garage, err := h.garages.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Garage not found"})
		}
		log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to load garage")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create callback request"})
	}

	var req models.CreateCallbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "customer_name and customer_phone are required"})
	}

	request := &models.CallbackRequest{
		GarageID:      garage.ID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	}
	if err := h.callbacks.Create(request); err != nil {
		log.Error().Err(err).Str("slug", garage.Slug).Msg("Failed to store callback request")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create callback request"})
	}

	// Notification is best effort: the request is stored either way.
	if h.notifier != nil && garage.CallbackContactEmail != "" {
		if err := h.notifier.SendCallbackRequest(garage, request); err != nil {
			log.Warn().Err(err).Str("slug", garage.Slug).Msg("Failed to send callback notification")
		} else if err := h.callbacks.MarkNotified(request.ID); err != nil {
			log.Warn().Err(err).Str("slug", garage.Slug).Msg("Failed to mark callback request notified")
		}
	}

	return c.JSON(http.StatusCreated, request)
}

// List godoc
// @Summary List callback requests
// @Description List callback requests for the garage, newest first (admin, secret gated)
// @Tags callbacks
// @Accept json
// @Produce json
// @Param slug path string true "Garage slug"
// @Success 200 {array} models.CallbackRequest
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /garages/{slug}/callback-requests [get]
func (h *CallbackHandler) List(c echo.Context) error {
	garage, err := h.garages.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Garage not found"})
		}
		log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to load garage")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list callback requests"})
	}

	requests, err := h.callbacks.ListByGarage(garage.ID)
	if err != nil {
		log.Error().Err(err).Str("slug", garage.Slug).Msg("Failed to list callback requests")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list callback requests"})
	}

	return c.JSON(http.StatusOK, requests)
}
