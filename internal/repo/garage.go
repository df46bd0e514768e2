package repo

import (
	"garagehub/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GarageRepository handles garage profile data access
type GarageRepository struct {
	db *gorm.DB
}

// NewGarageRepository creates a new garage repository
func NewGarageRepository(db *gorm.DB) *GarageRepository {
	return &GarageRepository{db: db}
}

// GetBySlug gets a garage by its public slug
func (r *GarageRepository) GetBySlug(slug string) (*models.Garage, error) {
	var garage models.Garage
	err := r.db.Where("slug = ?", slug).First(&garage).Error
	if err != nil {
		return nil, err
	}
	return &garage, nil
}

// Update updates a garage profile
func (r *GarageRepository) Update(garage *models.Garage) error {
	return r.db.Save(garage).Error
}

// ListServices lists a garage's services in display order
func (r *GarageRepository) ListServices(garageID uuid.UUID) ([]models.GarageService, error) {
	var services []models.GarageService
	err := r.db.Where("garage_id = ?", garageID).
		Order("position ASC, created_at ASC").
		Find(&services).Error
	return services, err
}

// ListReviews lists a garage's curated reviews in display order
func (r *GarageRepository) ListReviews(garageID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("garage_id = ?", garageID).
		Order("position ASC, created_at ASC").
		Find(&reviews).Error
	return reviews, err
}
