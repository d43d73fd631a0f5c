package planner

import (
	"fmt"
	"time"

	"github.com/workplanner/workplanner/pkg/holiday"
)

// DateFormat is the ISO layout used as the identity key for day records.
const DateFormat = "2006-01-02"

// DayType classifies a single calendar day.
type DayType string

const (
	DaySmartWorking DayType = "smart"
	DayOffice       DayType = "office"
	DayHoliday      DayType = "holiday"
	DayNonWorking   DayType = "non-working"
)

var ErrInvalidDayType = fmt.Errorf("invalid day type")

// ParseDayType validates a wire value and returns the corresponding DayType.
func ParseDayType(value string) (DayType, error) {
	switch DayType(value) {
	case DaySmartWorking, DayOffice, DayHoliday, DayNonWorking:
		return DayType(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDayType, value)
}

// DayRecord is an explicit per-date classification set by the user (or frozen
// in by the rule applicator). Absence of a record means the day is unset.
type DayRecord struct {
	Date string
	Type DayType
}

// WeeklyRule automatically classifies all matching weekdays of a month when
// rules are applied. At most one rule exists per weekday.
type WeeklyRule struct {
	DayOfWeek time.Weekday
	Type      DayType
}

// State is the aggregate root of the planner. It is immutable by contract:
// every transform returns a new value and leaves its receiver untouched, so
// the enclosing service can swap the current state wholesale.
type State struct {
	Days           map[string]DayRecord
	WeeklyRules    []WeeklyRule
	CustomHolidays []holiday.Custom
	Password       *string
}

// NewState returns the default empty state: no records, no rules, no custom
// holidays, and no credential set.
func NewState() State {
	return State{Days: map[string]DayRecord{}}
}

// FormatDate renders a date as its YYYY-MM-DD identity key.
func FormatDate(date time.Time) string {
	return date.Format(DateFormat)
}

// ParseDate parses a YYYY-MM-DD identity key into a local calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, value, time.Local)
}

// DayRecordFor returns the explicit record for date, if any.
func (s State) DayRecordFor(date time.Time) (DayRecord, bool) {
	record, ok := s.Days[FormatDate(date)]
	return record, ok
}

// WithDay returns a copy of the state with an explicit record for date.
func (s State) WithDay(date time.Time, dayType DayType) State {
	next := s
	next.Days = make(map[string]DayRecord, len(s.Days)+1)
	for key, record := range s.Days {
		next.Days[key] = record
	}
	key := FormatDate(date)
	next.Days[key] = DayRecord{Date: key, Type: dayType}
	return next
}

// WithoutDay returns a copy of the state with the explicit record for date
// removed. Removing an absent record is a no-op.
func (s State) WithoutDay(date time.Time) State {
	next := s
	next.Days = make(map[string]DayRecord, len(s.Days))
	key := FormatDate(date)
	for k, record := range s.Days {
		if k != key {
			next.Days[k] = record
		}
	}
	return next
}

// WithWeeklyRule returns a copy of the state with the rule added. An existing
// rule for the same weekday is replaced.
func (s State) WithWeeklyRule(rule WeeklyRule) State {
	next := s
	next.WeeklyRules = make([]WeeklyRule, 0, len(s.WeeklyRules)+1)
	for _, existing := range s.WeeklyRules {
		if existing.DayOfWeek != rule.DayOfWeek {
			next.WeeklyRules = append(next.WeeklyRules, existing)
		}
	}
	next.WeeklyRules = append(next.WeeklyRules, rule)
	return next
}

// WithoutWeeklyRule returns a copy of the state with the rule for the given
// weekday removed.
func (s State) WithoutWeeklyRule(dayOfWeek time.Weekday) State {
	next := s
	next.WeeklyRules = make([]WeeklyRule, 0, len(s.WeeklyRules))
	for _, existing := range s.WeeklyRules {
		if existing.DayOfWeek != dayOfWeek {
			next.WeeklyRules = append(next.WeeklyRules, existing)
		}
	}
	return next
}

// RuleFor returns the weekly rule for the given weekday, if any.
func (s State) RuleFor(dayOfWeek time.Weekday) (WeeklyRule, bool) {
	for _, rule := range s.WeeklyRules {
		if rule.DayOfWeek == dayOfWeek {
			return rule, true
		}
	}
	return WeeklyRule{}, false
}

// WithCustomHoliday returns a copy of the state with the custom holiday
// added. An existing entry with the same id is replaced.
func (s State) WithCustomHoliday(custom holiday.Custom) State {
	next := s
	next.CustomHolidays = make([]holiday.Custom, 0, len(s.CustomHolidays)+1)
	for _, existing := range s.CustomHolidays {
		if existing.ID != custom.ID {
			next.CustomHolidays = append(next.CustomHolidays, existing)
		}
	}
	next.CustomHolidays = append(next.CustomHolidays, custom)
	return next
}

// WithoutCustomHoliday returns a copy of the state with the custom holiday
// with the given id removed.
func (s State) WithoutCustomHoliday(id string) State {
	next := s
	next.CustomHolidays = make([]holiday.Custom, 0, len(s.CustomHolidays))
	for _, existing := range s.CustomHolidays {
		if existing.ID != id {
			next.CustomHolidays = append(next.CustomHolidays, existing)
		}
	}
	return next
}

// WithPassword returns a copy of the state with the credential replaced.
func (s State) WithPassword(password string) State {
	next := s
	next.Password = &password
	return next
}
