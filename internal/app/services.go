package app

import (
	"os"

	"garagehub/internal/repo"
	"garagehub/internal/services"
	"garagehub/pkg/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Services holds all application services
type Services struct {
	DB           *gorm.DB
	GarageRepo   *repo.GarageRepository
	ScheduleRepo *repo.ScheduleRepository
	CallbackRepo *repo.CallbackRepository
	EmailService *services.EmailService
	AdminSecret  string
}

// NewServices creates a new services container
func NewServices(db *gorm.DB) *Services {
	// Initialize repositories
	garageRepo := repo.NewGarageRepository(db)
	scheduleRepo := repo.NewScheduleRepository(db)
	callbackRepo := repo.NewCallbackRepository(db)

	// Email service is optional; callback requests are still stored
	// when it is absent.
	emailService, err := services.NewEmailService()
	if err != nil {
		log.Warn().Err(err).Msg("Email service not configured, callback notifications disabled")
		emailService = nil
	}

	adminSecret := os.Getenv("ADMIN_WRITE_SECRET")
	if adminSecret == "" {
		log.Warn().Msg("ADMIN_WRITE_SECRET not set, admin write endpoints will refuse all requests")
	}

	return &Services{
		DB:           db,
		GarageRepo:   garageRepo,
		ScheduleRepo: scheduleRepo,
		CallbackRepo: callbackRepo,
		EmailService: emailService,
		AdminSecret:  adminSecret,
	}
}

// Notifier returns the callback notifier, or nil when email is not
// configured. Returning an interface here keeps a typed nil pointer
// out of the handlers' nil checks.
func (s *Services) Notifier() interface {
	SendCallbackRequest(garage *models.Garage, request *models.CallbackRequest) error
} {
	if s.EmailService == nil {
		return nil
	}
	return s.EmailService
}
