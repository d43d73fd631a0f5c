package planner

import (
	"time"

	"github.com/workplanner/workplanner/pkg/holiday"
)

// ResolvedDay is the effective view of one calendar day: the classification
// that applies plus holiday metadata. Holiday status is informational and is
// computed independently of the classification, so an explicitly set Office
// day on Ferragosto is still reported as a holiday.
type ResolvedDay struct {
	Date        time.Time
	Type        DayType
	Explicit    bool
	IsHoliday   bool
	HolidayName string
}

// Resolve returns the effective classification of date in the given state.
// An explicit day record always wins, even on weekends and holidays. Without
// a record the day defaults to non-working.
func Resolve(date time.Time, state State) ResolvedDay {
	resolved := ResolvedDay{Date: date, Type: DayNonWorking}

	if record, ok := state.DayRecordFor(date); ok {
		resolved.Type = record.Type
		resolved.Explicit = true
	}

	if holiday.IsNational(date) {
		name, _ := holiday.Name(date)
		resolved.IsHoliday = true
		resolved.HolidayName = name
	} else if custom, ok := holiday.MatchCustom(date, state.CustomHolidays); ok {
		resolved.IsHoliday = true
		resolved.HolidayName = custom.Name
	}

	return resolved
}

// ResolveMonth resolves every calendar day of the given month, in date order.
func ResolveMonth(year int, month time.Month, state State) []ResolvedDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	days := make([]ResolvedDay, 0, 31)
	for date := first; date.Month() == month; date = date.AddDate(0, 0, 1) {
		days = append(days, Resolve(date, state))
	}
	return days
}
