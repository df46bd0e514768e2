package handlers

import (
	"garagehub/pkg/models"

	"github.com/google/uuid"
)

// GarageStore is the subset of garage persistence the handlers need
type GarageStore interface {
	GetBySlug(slug string) (*models.Garage, error)
	Update(garage *models.Garage) error
	ListServices(garageID uuid.UUID) ([]models.GarageService, error)
	ListReviews(garageID uuid.UUID) ([]models.Review, error)
}

// CallbackStore persists visitor callback requests
type CallbackStore interface {
	Create(request *models.CallbackRequest) error
	ListByGarage(garageID uuid.UUID) ([]models.CallbackRequest, error)
	MarkNotified(id uuid.UUID) error
}

// CallbackNotifier delivers the callback notification to the garage's
// callback contact. Delivery is best effort; the request is stored
// either way.
type CallbackNotifier interface {
	SendCallbackRequest(garage *models.Garage, request *models.CallbackRequest) error
}
