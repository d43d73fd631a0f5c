package stats

import (
	"time"

	"github.com/workplanner/workplanner/pkg/planner"
)

// StateProvider yields the current planner state. Satisfied by
// planner.Service.
type StateProvider interface {
	Snapshot() planner.State
}

type StatsService interface {
	MonthlyStats(year int, month time.Month) MonthlyStats
}

type StatsServiceImpl struct {
	stateProvider StateProvider
}

func NewStatsService(stateProvider StateProvider) *StatsServiceImpl {
	return &StatsServiceImpl{stateProvider: stateProvider}
}

func (s *StatsServiceImpl) MonthlyStats(year int, month time.Month) MonthlyStats {
	return Monthly(year, month, s.stateProvider.Snapshot())
}

// Monthly walks every day of the month, resolves it against state, and
// accumulates the per-category counts.
func Monthly(year int, month time.Month, state planner.State) MonthlyStats {
	var stats MonthlyStats

	for _, day := range planner.ResolveMonth(year, month, state) {
		stats.TotalDays++

		weekday := day.Date.Weekday()
		isWeekend := weekday == time.Saturday || weekday == time.Sunday

		// Capacity, not assignment: a weekday that is no holiday counts as a
		// working day whatever classification it carries.
		if !isWeekend && !day.IsHoliday {
			stats.WorkingDays++
		}

		switch day.Type {
		case planner.DaySmartWorking:
			stats.SmartDays++
		case planner.DayOffice:
			stats.OfficeDays++
		case planner.DayHoliday:
			stats.HolidayDays++
		}

		if isWeekend || day.IsHoliday || day.Type == planner.DayNonWorking {
			stats.NonWorkingDays++
		}
	}

	stats.SmartQuotaExceeded = stats.SmartDays > SmartQuota
	return stats
}
