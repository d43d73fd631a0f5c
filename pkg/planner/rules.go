package planner

import (
	"time"

	"github.com/workplanner/workplanner/pkg/holiday"
)

// ApplyWeeklyRules fills the given month with classifications derived from
// the weekly rules and returns the resulting state. Rules are a convenience
// fill, never a forcing function:
//   - weekends are skipped,
//   - national and custom holidays are skipped,
//   - days that already have an explicit record are never overwritten.
//
// Applying the same rules twice is a no-op on the second pass, because the
// records written by the first pass count as explicit.
func ApplyWeeklyRules(year int, month time.Month, state State) State {
	next := state

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	for date := first; date.Month() == month; date = date.AddDate(0, 0, 1) {
		if isWeekend(date) {
			continue
		}
		if holiday.IsNational(date) {
			continue
		}
		if _, ok := holiday.MatchCustom(date, state.CustomHolidays); ok {
			continue
		}
		if _, ok := next.DayRecordFor(date); ok {
			continue
		}
		rule, ok := state.RuleFor(date.Weekday())
		if !ok {
			continue
		}
		next = next.WithDay(date, rule.Type)
	}

	return next
}

func isWeekend(date time.Time) bool {
	return date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
}
