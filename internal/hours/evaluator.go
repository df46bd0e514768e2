package hours

import (
	"time"

	"garagehub/pkg/models"
)

// window is an open interval in minutes since local midnight.
// close < open means the window crosses midnight and closes on the
// following calendar day.
type window struct {
	open  int
	close int
}

func (w window) crossesMidnight() bool {
	return w.close < w.open
}

// weekdayNumber maps Go's Sunday-first weekday to the Monday=1..Sunday=7
// convention used by the schedule rows.
func weekdayNumber(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// minutesOfDay parses a strict two-digit HH:MM string into minutes since
// midnight. Anything else reports ok=false.
func minutesOfDay(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}

// openWindow extracts the minute window from a day entry. ok is false
// when the day is closed or either time is absent or malformed, so
// half-written rows evaluate as closed instead of failing.
func openWindow(h models.OpeningHours) (window, bool) {
	if !h.IsOpen || h.OpenTime == nil || h.CloseTime == nil {
		return window{}, false
	}
	openMin, ok := minutesOfDay(*h.OpenTime)
	if !ok {
		return window{}, false
	}
	closeMin, ok := minutesOfDay(*h.CloseTime)
	if !ok {
		return window{}, false
	}
	return window{open: openMin, close: closeMin}, true
}

// IsOpenNow reports whether the garage is open at this instant. Status
// is recomputed on every call; it is never cached.
func IsOpenNow(schedule []models.OpeningHours, timezone string) bool {
	return IsOpenAt(schedule, timezone, time.Now())
}

// IsOpenAt reports whether the garage is open at the given instant,
// evaluated in the garage's own timezone.
//
// The interval is closed-open: the opening minute counts as open, the
// closing minute does not. A window whose close time precedes its open
// time runs into the next calendar day, so both today's entry and
// yesterday's possible overnight carry-over are checked. Any malformed
// or missing data, including an unknown timezone, degrades to false.
func IsOpenAt(schedule []models.OpeningHours, timezone string, at time.Time) bool {
	if len(schedule) == 0 {
		return false
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return false
	}

	local := at.In(loc)
	now := local.Hour()*60 + local.Minute()
	today := weekdayNumber(local.Weekday())
	yesterday := today - 1
	if yesterday == 0 {
		yesterday = 7
	}

	byDay := make(map[int]models.OpeningHours, len(schedule))
	for _, h := range schedule {
		byDay[h.DayOfWeek] = h
	}

	if w, ok := openWindow(byDay[today]); ok {
		if w.crossesMidnight() {
			// Today's window runs until tomorrow; only the opening
			// side falls on today.
			if now >= w.open {
				return true
			}
		} else if now >= w.open && now < w.close {
			return true
		}
	}

	// An overnight window opened yesterday is still in effect until its
	// close time this morning.
	if w, ok := openWindow(byDay[yesterday]); ok && w.crossesMidnight() && now < w.close {
		return true
	}

	return false
}
