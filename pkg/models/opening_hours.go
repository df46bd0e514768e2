package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// OpeningHours is one weekday row of a garage's weekly schedule.
// DayOfWeek runs 1 (Monday) through 7 (Sunday); the pair
// (garage_id, day_of_week) is unique. OpenTime and CloseTime are
// wall-clock HH:MM strings and only meaningful when IsOpen is true.
type OpeningHours struct {
	BaseModel
	GarageID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uni_opening_hours_garage_day;constraint:OnDelete:CASCADE" json:"garage_id"`
	DayOfWeek int       `gorm:"not null;uniqueIndex:uni_opening_hours_garage_day" json:"day_of_week"`
	IsOpen    bool      `gorm:"not null;default:false" json:"is_open"`
	OpenTime  *string   `gorm:"type:varchar(5)" json:"open_time,omitempty"`
	CloseTime *string   `gorm:"type:varchar(5)" json:"close_time,omitempty"`
}

// DayHoursInput is one proposed day entry in a schedule submission.
// IsOpen is a pointer so a missing flag is distinguishable from false.
type DayHoursInput struct {
	DayOfWeek int     `json:"day_of_week"`
	IsOpen    *bool   `json:"is_open"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
}

// UnmarshalJSON decodes a day entry, treating a non-boolean is_open as
// absent rather than failing the whole document. Validation then
// rejects the entry with a message that names the offending day.
func (d *DayHoursInput) UnmarshalJSON(data []byte) error {
	type day struct {
		DayOfWeek int             `json:"day_of_week"`
		IsOpen    json.RawMessage `json:"is_open"`
		OpenTime  *string         `json:"open_time"`
		CloseTime *string         `json:"close_time"`
	}
	var raw day
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.DayOfWeek = raw.DayOfWeek
	d.OpenTime = raw.OpenTime
	d.CloseTime = raw.CloseTime
	d.IsOpen = nil
	if len(raw.IsOpen) > 0 && string(raw.IsOpen) != "null" {
		var flag bool
		if err := json.Unmarshal(raw.IsOpen, &flag); err == nil {
			d.IsOpen = &flag
		}
	}
	return nil
}

// ReplaceHoursRequest is the admin write payload for a full week.
// The secret may arrive here or in the X-Admin-Secret header.
type ReplaceHoursRequest struct {
	Secret string          `json:"secret,omitempty"`
	Hours  []DayHoursInput `json:"hours"`
}
