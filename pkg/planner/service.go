package planner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/workplanner/workplanner/internal/event_bus"
	"github.com/workplanner/workplanner/pkg/holiday"
)

var (
	ErrDayRecordNotFound     = fmt.Errorf("day record not found")
	ErrRuleNotFound          = fmt.Errorf("weekly rule not found")
	ErrCustomHolidayNotFound = fmt.Errorf("custom holiday not found")
	ErrInvalidCustomHoliday  = fmt.Errorf("invalid custom holiday")
)

// StateUpdated is the payload published on the event bus after every state
// replacement. Subscribers receive the new state by value.
type StateUpdated struct {
	State State
}

// Service holds the authoritative in-memory planner state. Every mutation
// derives a new state value from the current one, swaps it in under the lock,
// and publishes a StateUpdated event; persistence listens on the bus and is
// best effort, so a failing save never breaks the session.
type Service struct {
	mu    sync.RWMutex
	state State
	bus   *event_bus.EventBus
}

func NewService(bus *event_bus.EventBus) *Service {
	return &Service{state: NewState(), bus: bus}
}

// Load initializes the in-memory state from the repository. A missing or
// unreadable blob degrades to the default empty state and is never fatal.
func (s *Service) Load(ctx context.Context, repo Repository) {
	state, found, err := repo.Load(ctx)
	if err != nil {
		log.Errorf("failed to load planner state, starting with defaults: %v", err)
		return
	}
	if !found {
		log.Info("no stored planner state found, starting with defaults")
		return
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	log.Infof("loaded planner state: %d day records, %d weekly rules, %d custom holidays",
		len(state.Days), len(state.WeeklyRules), len(state.CustomHolidays))
}

// Snapshot returns the current state value. The returned value must be
// treated as read-only shared data; mutations go through the transforms.
func (s *Service) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Service) replace(ctx context.Context, next State) {
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.PlannerStateUpdated, StateUpdated{State: next})); err != nil {
		// Persistence is fire-and-forget: the in-memory state stays
		// authoritative for the session.
		log.Warnf("state update event not fully processed: %v", err)
	}
}

// ResolveMonth resolves every day of the month against the current state.
func (s *Service) ResolveMonth(year int, month time.Month) []ResolvedDay {
	return ResolveMonth(year, month, s.Snapshot())
}

// SetDay stores an explicit classification for date.
func (s *Service) SetDay(ctx context.Context, date time.Time, dayType DayType) ResolvedDay {
	next := s.Snapshot().WithDay(date, dayType)
	s.replace(ctx, next)
	return Resolve(date, next)
}

// ClearDay removes the explicit classification for date.
func (s *Service) ClearDay(ctx context.Context, date time.Time) (ResolvedDay, error) {
	state := s.Snapshot()
	if _, ok := state.DayRecordFor(date); !ok {
		return ResolvedDay{}, ErrDayRecordNotFound
	}
	next := state.WithoutDay(date)
	s.replace(ctx, next)
	return Resolve(date, next), nil
}

// WeeklyRules returns the configured weekly rules.
func (s *Service) WeeklyRules() []WeeklyRule {
	return s.Snapshot().WeeklyRules
}

// PutWeeklyRule adds a weekly rule, replacing any rule for the same weekday.
func (s *Service) PutWeeklyRule(ctx context.Context, rule WeeklyRule) {
	s.replace(ctx, s.Snapshot().WithWeeklyRule(rule))
}

// DeleteWeeklyRule removes the rule for the given weekday.
func (s *Service) DeleteWeeklyRule(ctx context.Context, dayOfWeek time.Weekday) error {
	state := s.Snapshot()
	if _, ok := state.RuleFor(dayOfWeek); !ok {
		return ErrRuleNotFound
	}
	s.replace(ctx, state.WithoutWeeklyRule(dayOfWeek))
	return nil
}

// ApplyRules fills the given month from the weekly rules and returns the
// resolved month after the fill.
func (s *Service) ApplyRules(ctx context.Context, year int, month time.Month) []ResolvedDay {
	next := ApplyWeeklyRules(year, month, s.Snapshot())
	s.replace(ctx, next)
	return ResolveMonth(year, month, next)
}

// CustomHolidays returns the configured custom holidays.
func (s *Service) CustomHolidays() []holiday.Custom {
	return s.Snapshot().CustomHolidays
}

// AddCustomHoliday validates and stores a new custom holiday, assigning it a
// fresh id.
func (s *Service) AddCustomHoliday(ctx context.Context, name string, month time.Month, day int) (holiday.Custom, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return holiday.Custom{}, fmt.Errorf("%w: name must not be empty", ErrInvalidCustomHoliday)
	}
	if month < time.January || month > time.December {
		return holiday.Custom{}, fmt.Errorf("%w: month out of range", ErrInvalidCustomHoliday)
	}
	if day < 1 || day > 31 {
		return holiday.Custom{}, fmt.Errorf("%w: day out of range", ErrInvalidCustomHoliday)
	}

	custom := holiday.Custom{
		ID:    uuid.NewString(),
		Name:  name,
		Month: month,
		Day:   day,
	}
	s.replace(ctx, s.Snapshot().WithCustomHoliday(custom))
	return custom, nil
}

// RemoveCustomHoliday deletes the custom holiday with the given id.
func (s *Service) RemoveCustomHoliday(ctx context.Context, id string) error {
	state := s.Snapshot()
	found := false
	for _, custom := range state.CustomHolidays {
		if custom.ID == id {
			found = true
			break
		}
	}
	if !found {
		return ErrCustomHolidayNotFound
	}
	s.replace(ctx, state.WithoutCustomHoliday(id))
	return nil
}

// Password returns the stored credential, nil when none is set.
func (s *Service) Password() *string {
	return s.Snapshot().Password
}

// SetPassword replaces the stored credential. Validation of the candidate
// happens at the HTTP boundary.
func (s *Service) SetPassword(ctx context.Context, password string) {
	s.replace(ctx, s.Snapshot().WithPassword(password))
}
