package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/workplanner/workplanner/pkg/holiday"
	"github.com/workplanner/workplanner/pkg/planner"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestMonthly_TotalDaysMatchesCalendar(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tt := range tests {
		stats := Monthly(tt.year, tt.month, planner.NewState())
		assert.Equal(t, tt.want, stats.TotalDays, "%d-%02d", tt.year, tt.month)
	}
}

func TestMonthly_EmptyStateCounts(t *testing.T) {
	// June 2025: 30 days, 9 weekend days, June 2 is a Monday holiday.
	stats := Monthly(2025, time.June, planner.NewState())

	assert.Equal(t, 30, stats.TotalDays)
	assert.Equal(t, 20, stats.WorkingDays)
	assert.Equal(t, 0, stats.SmartDays)
	assert.Equal(t, 0, stats.OfficeDays)
	assert.Equal(t, 0, stats.HolidayDays)
	// Every unset day resolves to non-working.
	assert.Equal(t, 30, stats.NonWorkingDays)
	assert.False(t, stats.SmartQuotaExceeded)
}

func TestMonthly_ClassificationBuckets(t *testing.T) {
	state := planner.NewState().
		WithDay(date(2025, time.June, 9), planner.DaySmartWorking).
		WithDay(date(2025, time.June, 10), planner.DayOffice).
		WithDay(date(2025, time.June, 11), planner.DayHoliday)

	stats := Monthly(2025, time.June, state)

	assert.Equal(t, 1, stats.SmartDays)
	assert.Equal(t, 1, stats.OfficeDays)
	assert.Equal(t, 1, stats.HolidayDays)
	// All three classified weekdays leave the non-working union: none of them
	// is a weekend, an actual holiday, or classified non-working.
	assert.Equal(t, 27, stats.NonWorkingDays)
	// Capacity is independent of the recorded classifications.
	assert.Equal(t, 20, stats.WorkingDays)
}

func TestMonthly_BucketsOverlapOnHolidays(t *testing.T) {
	// June 2 2025 is Festa della Repubblica; classifying it as office keeps
	// it inside the non-working union and outside the capacity count.
	state := planner.NewState().WithDay(date(2025, time.June, 2), planner.DayOffice)

	stats := Monthly(2025, time.June, state)

	assert.Equal(t, 1, stats.OfficeDays)
	assert.Equal(t, 30, stats.NonWorkingDays)
	assert.Equal(t, 20, stats.WorkingDays)
}

func TestMonthly_CustomHolidayReducesCapacity(t *testing.T) {
	state := planner.NewState().WithCustomHoliday(holiday.Custom{
		ID: "1", Name: "Patrono", Month: time.June, Day: 11,
	})

	stats := Monthly(2025, time.June, state)
	assert.Equal(t, 19, stats.WorkingDays)
}

func TestMonthly_SmartQuota(t *testing.T) {
	atQuota := planner.NewState()
	for day := 1; day <= 12; day++ {
		atQuota = atQuota.WithDay(date(2025, time.June, day), planner.DaySmartWorking)
	}
	stats := Monthly(2025, time.June, atQuota)
	assert.Equal(t, 12, stats.SmartDays)
	assert.False(t, stats.SmartQuotaExceeded)

	overQuota := atQuota.WithDay(date(2025, time.June, 13), planner.DaySmartWorking)
	stats = Monthly(2025, time.June, overQuota)
	assert.Equal(t, 13, stats.SmartDays)
	assert.True(t, stats.SmartQuotaExceeded)
}

func TestStatsService_UsesCurrentState(t *testing.T) {
	provider := &stubStateProvider{state: planner.NewState().
		WithDay(date(2025, time.June, 9), planner.DaySmartWorking)}
	service := NewStatsService(provider)

	stats := service.MonthlyStats(2025, time.June)
	assert.Equal(t, 1, stats.SmartDays)
}

type stubStateProvider struct {
	state planner.State
}

func (s *stubStateProvider) Snapshot() planner.State {
	return s.state
}
