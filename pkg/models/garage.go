package models

import (
	"time"

	"github.com/google/uuid"
)

// Garage represents the service business whose profile is published
type Garage struct {
	BaseModel
	Slug               string `gorm:"unique;not null" json:"slug" validate:"required"`
	BusinessName       string `gorm:"not null" json:"business_name" validate:"required"`
	OneLineDescription string `json:"one_line_description"`
	AboutText          string `gorm:"type:text" json:"about_text"`
	HeroImageURL       string `json:"hero_image_url,omitempty"`
	Timezone           string `gorm:"not null;default:'Europe/London'" json:"timezone" validate:"required"` // IANA zone name

	// Contact details
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressLine3 string `json:"address_line3,omitempty"`
	AddressLine4 string `json:"address_line4,omitempty"`
	Postcode     string `json:"postcode"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`

	GoogleReviewsURL string `json:"google_reviews_url,omitempty"`

	// Callback notifications
	CallbackContactName  string `json:"callback_contact_name"`
	CallbackContactEmail string `json:"callback_contact_email"`
}

// GarageService represents one offered service on the profile page
type GarageService struct {
	BaseModel
	GarageID    uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE" json:"garage_id"`
	Name        string    `gorm:"not null" json:"name" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	Position    int       `gorm:"default:0" json:"position"`
}

// Review represents a curated customer review shown on the profile page
type Review struct {
	BaseModel
	GarageID     uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE" json:"garage_id"`
	CustomerName string    `gorm:"not null" json:"customer_name" validate:"required"`
	ReviewText   string    `gorm:"type:text" json:"review_text"`
	Stars        int       `gorm:"not null;check:stars >= 1 AND stars <= 5" json:"stars" validate:"required,min=1,max=5"`
	Position     int       `gorm:"default:0" json:"position"`
}

// CallbackRequest represents a visitor asking to be called back
type CallbackRequest struct {
	BaseModel
	GarageID      uuid.UUID  `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE" json:"garage_id"`
	CustomerName  string     `gorm:"not null" json:"customer_name" validate:"required"`
	CustomerPhone string     `gorm:"not null" json:"customer_phone" validate:"required"`
	Notified      bool       `gorm:"default:false" json:"notified"`
	NotifiedAt    *time.Time `json:"notified_at,omitempty"`
}

// GarageWithDetails is the public profile payload, composed per request
type GarageWithDetails struct {
	Garage
	OpeningHours []OpeningHours  `json:"opening_hours"`
	Services     []GarageService `json:"services"`
	Reviews      []Review        `json:"reviews"`
	IsOpenNow    bool            `json:"is_open_now"`
}

type CreateCallbackRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerPhone string `json:"customer_phone" validate:"required"`
}

type UpdateGarageRequest struct {
	BusinessName         *string `json:"business_name"`
	OneLineDescription   *string `json:"one_line_description"`
	AboutText            *string `json:"about_text"`
	HeroImageURL         *string `json:"hero_image_url"`
	Timezone             *string `json:"timezone"`
	AddressLine1         *string `json:"address_line1"`
	AddressLine2         *string `json:"address_line2"`
	AddressLine3         *string `json:"address_line3"`
	AddressLine4         *string `json:"address_line4"`
	Postcode             *string `json:"postcode"`
	Phone                *string `json:"phone"`
	Email                *string `json:"email"`
	GoogleReviewsURL     *string `json:"google_reviews_url"`
	CallbackContactName  *string `json:"callback_contact_name"`
	CallbackContactEmail *string `json:"callback_contact_email"`
}
