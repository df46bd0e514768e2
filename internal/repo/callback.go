package repo

import (
	"time"

	"garagehub/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallbackRepository handles callback request data access
type CallbackRepository struct {
	db *gorm.DB
}

// NewCallbackRepository creates a new callback repository
func NewCallbackRepository(db *gorm.DB) *CallbackRepository {
	return &CallbackRepository{db: db}
}

// Create stores a new callback request
func (r *CallbackRepository) Create(request *models.CallbackRequest) error {
	return r.db.Create(request).Error
}

// ListByGarage lists callback requests for a garage, newest first
func (r *CallbackRepository) ListByGarage(garageID uuid.UUID) ([]models.CallbackRequest, error) {
	var requests []models.CallbackRequest
	err := r.db.Where("garage_id = ?", garageID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// MarkNotified records that the notification email went out
func (r *CallbackRepository) MarkNotified(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.CallbackRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"notified": true, "notified_at": now}).Error
}
