package hours

import (
	"fmt"
	"regexp"

	"garagehub/pkg/models"
)

// ErrorKind classifies why a schedule submission was rejected.
type ErrorKind string

const (
	ErrShape        ErrorKind = "shape"
	ErrRange        ErrorKind = "range"
	ErrDuplicate    ErrorKind = "duplicate"
	ErrType         ErrorKind = "type"
	ErrMissingField ErrorKind = "missing_field"
	ErrFormat       ErrorKind = "format"
)

// ValidationError describes the first problem found in a schedule
// submission. Day is 0 for whole-submission failures such as a wrong
// entry count.
type ValidationError struct {
	Kind    ErrorKind
	Day     int
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(kind ErrorKind, day int, field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Day:     day,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Validate checks a proposed weekly schedule before it reaches storage:
// exactly 7 entries, each day 1..7 exactly once, a present open flag,
// and well-formed HH:MM times on every open day. Close-before-open is
// legal here (overnight span); AdvisoryWarnings covers the suspicious
// cases without blocking the write.
func Validate(entries []models.DayHoursInput) *ValidationError {
	if len(entries) != 7 {
		return invalid(ErrShape, 0, "hours", "Invalid hours format. Expected array of 7 days, got %d.", len(entries))
	}

	var seen [8]bool
	for _, e := range entries {
		if e.DayOfWeek < 1 || e.DayOfWeek > 7 {
			return invalid(ErrRange, e.DayOfWeek, "day_of_week", "Invalid day_of_week: %d. Must be 1-7.", e.DayOfWeek)
		}
		if seen[e.DayOfWeek] {
			return invalid(ErrDuplicate, e.DayOfWeek, "day_of_week", "Duplicate day_of_week: %d. Each day must appear exactly once.", e.DayOfWeek)
		}
		seen[e.DayOfWeek] = true

		if e.IsOpen == nil {
			return invalid(ErrType, e.DayOfWeek, "is_open", "Invalid is_open for day %d. Must be boolean.", e.DayOfWeek)
		}
		if !*e.IsOpen {
			continue
		}

		if e.OpenTime == nil || *e.OpenTime == "" || e.CloseTime == nil || *e.CloseTime == "" {
			return invalid(ErrMissingField, e.DayOfWeek, "open_time", "Day %d is open but missing open_time or close_time.", e.DayOfWeek)
		}
		if !timePattern.MatchString(*e.OpenTime) {
			return invalid(ErrFormat, e.DayOfWeek, "open_time", "Invalid time format for day %d. Use HH:MM format.", e.DayOfWeek)
		}
		if !timePattern.MatchString(*e.CloseTime) {
			return invalid(ErrFormat, e.DayOfWeek, "close_time", "Invalid time format for day %d. Use HH:MM format.", e.DayOfWeek)
		}
	}

	return nil
}

// AdvisoryWarnings flags open days whose close time precedes the open
// time by an implied gap of more than an hour, which usually means a
// typo rather than an intended overnight span. Warnings are surfaced
// next to the stored result and never block persistence.
func AdvisoryWarnings(entries []models.DayHoursInput) []string {
	var warnings []string
	for _, e := range entries {
		if e.IsOpen == nil || !*e.IsOpen || e.OpenTime == nil || e.CloseTime == nil {
			continue
		}
		openMin, ok := minutesOfDay(*e.OpenTime)
		if !ok {
			continue
		}
		closeMin, ok := minutesOfDay(*e.CloseTime)
		if !ok {
			continue
		}
		if closeMin < openMin && openMin-closeMin > 60 {
			warnings = append(warnings, fmt.Sprintf(
				"Day %d closes at %s before it opens at %s; treated as an overnight span, double-check it is not a typo.",
				e.DayOfWeek, *e.CloseTime, *e.OpenTime))
		}
	}
	return warnings
}
