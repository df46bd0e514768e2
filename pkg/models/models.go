package models

// GetAllModels returns all models for GORM AutoMigrate
func GetAllModels() []interface{} {
	return []interface{}{
		&Garage{},
		&OpeningHours{},
		&GarageService{},
		&Review{},
		&CallbackRequest{},
	}
}
