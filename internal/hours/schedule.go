package hours

import (
	"github.com/google/uuid"

	"garagehub/pkg/models"
)

// ScheduleStore is the persistence contract for weekly schedules.
// ReadSchedule may return a sparse week; ReplaceSchedule must write all
// seven days so that concurrent readers observe either the old week or
// the new one, never a mix.
type ScheduleStore interface {
	ReadSchedule(garageID uuid.UUID) ([]models.OpeningHours, error)
	ReplaceSchedule(garageID uuid.UUID, week []models.OpeningHours) ([]models.OpeningHours, error)
}

// FillWeek returns exactly seven entries ordered Monday through Sunday,
// synthesizing a closed entry for any day missing from stored. The
// synthesized entries are a read-time default, not a stored state.
func FillWeek(garageID uuid.UUID, stored []models.OpeningHours) []models.OpeningHours {
	byDay := make(map[int]models.OpeningHours, len(stored))
	for _, h := range stored {
		byDay[h.DayOfWeek] = h
	}

	week := make([]models.OpeningHours, 0, 7)
	for day := 1; day <= 7; day++ {
		if h, ok := byDay[day]; ok {
			week = append(week, h)
			continue
		}
		week = append(week, models.OpeningHours{
			GarageID:  garageID,
			DayOfWeek: day,
			IsOpen:    false,
		})
	}
	return week
}

// BuildWeek converts a validated submission into schedule rows for the
// store. Times on closed days are dropped rather than persisted.
func BuildWeek(garageID uuid.UUID, entries []models.DayHoursInput) []models.OpeningHours {
	week := make([]models.OpeningHours, 0, len(entries))
	for _, e := range entries {
		row := models.OpeningHours{
			GarageID:  garageID,
			DayOfWeek: e.DayOfWeek,
		}
		if e.IsOpen != nil && *e.IsOpen {
			row.IsOpen = true
			row.OpenTime = e.OpenTime
			row.CloseTime = e.CloseTime
		}
		week = append(week, row)
	}
	return week
}
