package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workplanner/workplanner/pkg/holiday"
)

// June 2025: Mondays fall on 2 (Festa della Repubblica), 9, 16, 23, 30.

func TestApplyWeeklyRules_FillsMatchingWeekdays(t *testing.T) {
	state := NewState().WithWeeklyRule(WeeklyRule{DayOfWeek: time.Monday, Type: DaySmartWorking})

	next := ApplyWeeklyRules(2025, time.June, state)

	for _, day := range []int{9, 16, 23, 30} {
		record, ok := next.DayRecordFor(date(2025, time.June, day))
		require.True(t, ok, "expected record on June %d", day)
		assert.Equal(t, DaySmartWorking, record.Type)
	}
	// June 2 is a national holiday and must stay empty.
	_, ok := next.DayRecordFor(date(2025, time.June, 2))
	assert.False(t, ok)
}

func TestApplyWeeklyRules_NeverWritesWeekends(t *testing.T) {
	state := NewState().
		WithWeeklyRule(WeeklyRule{DayOfWeek: time.Saturday, Type: DayOffice}).
		WithWeeklyRule(WeeklyRule{DayOfWeek: time.Sunday, Type: DayOffice})

	next := ApplyWeeklyRules(2025, time.June, state)
	assert.Empty(t, next.Days)
}

func TestApplyWeeklyRules_SkipsCustomHolidays(t *testing.T) {
	state := NewState().
		WithWeeklyRule(WeeklyRule{DayOfWeek: time.Monday, Type: DaySmartWorking}).
		WithCustomHoliday(holiday.Custom{ID: "1", Name: "Patrono", Month: time.June, Day: 16})

	next := ApplyWeeklyRules(2025, time.June, state)

	_, ok := next.DayRecordFor(date(2025, time.June, 16))
	assert.False(t, ok)
	_, ok = next.DayRecordFor(date(2025, time.June, 9))
	assert.True(t, ok)
}

func TestApplyWeeklyRules_NeverClobbersExplicitRecords(t *testing.T) {
	monday := date(2025, time.June, 9)
	state := NewState().
		WithDay(monday, DayHoliday).
		WithWeeklyRule(WeeklyRule{DayOfWeek: time.Monday, Type: DaySmartWorking})

	next := ApplyWeeklyRules(2025, time.June, state)

	record, ok := next.DayRecordFor(monday)
	require.True(t, ok)
	assert.Equal(t, DayHoliday, record.Type)
}

func TestApplyWeeklyRules_Idempotent(t *testing.T) {
	state := NewState().
		WithWeeklyRule(WeeklyRule{DayOfWeek: time.Monday, Type: DaySmartWorking}).
		WithWeeklyRule(WeeklyRule{DayOfWeek: time.Wednesday, Type: DayOffice}).
		WithDay(date(2025, time.June, 11), DayHoliday)

	once := ApplyWeeklyRules(2025, time.June, state)
	twice := ApplyWeeklyRules(2025, time.June, once)

	assert.Equal(t, once, twice)
}

func TestApplyWeeklyRules_NoRulesIsANoOp(t *testing.T) {
	state := NewState().WithDay(date(2025, time.June, 11), DayOffice)

	next := ApplyWeeklyRules(2025, time.June, state)
	assert.Equal(t, state, next)
}

func TestApplyWeeklyRules_DoesNotMutateInput(t *testing.T) {
	state := NewState().WithWeeklyRule(WeeklyRule{DayOfWeek: time.Monday, Type: DaySmartWorking})

	_ = ApplyWeeklyRules(2025, time.June, state)
	assert.Empty(t, state.Days)
}
