package repo

import (
	"fmt"

	"garagehub/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleRepository persists weekly opening hours, one row per
// (garage_id, day_of_week)
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ReadSchedule reads the stored days for a garage, ordered by day.
// The result may be sparse; callers fill the missing days.
func (r *ScheduleRepository) ReadSchedule(garageID uuid.UUID) ([]models.OpeningHours, error) {
	var rows []models.OpeningHours
	err := r.db.Where("garage_id = ?", garageID).
		Order("day_of_week ASC").
		Find(&rows).Error
	return rows, err
}

// ReplaceSchedule upserts the full week in a single transaction keyed
// on (garage_id, day_of_week), so concurrent readers observe either
// the old week or the new one, never a mix. The upsert is idempotent
// and safe to retry.
func (r *ScheduleRepository) ReplaceSchedule(garageID uuid.UUID, week []models.OpeningHours) ([]models.OpeningHours, error) {
	if len(week) != 7 {
		return nil, fmt.Errorf("expected 7 days, got %d", len(week))
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	for i := range week {
		week[i].GarageID = garageID
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "garage_id"}, {Name: "day_of_week"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_open", "open_time", "close_time", "updated_at"}),
	}).Create(&week).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return r.ReadSchedule(garageID)
}
