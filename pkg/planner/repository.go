package planner

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/workplanner/workplanner/pkg/holiday"
)

// Repository persists the whole planner state as a single document.
type Repository interface {
	// Load returns the stored state. The bool result is false when no state
	// has been stored yet.
	Load(ctx context.Context) (State, bool, error)
	Save(ctx context.Context, state State) error
}

// stateDocument is the JSON shape of the persisted state. Wire names match
// the export format of the original web client so existing blobs stay
// readable.
type stateDocument struct {
	Days           map[string]dayRecordDocument `json:"days"`
	WeeklyRules    []weeklyRuleDocument         `json:"weeklyRules"`
	CustomHolidays []customHolidayDocument      `json:"customHolidays"`
	Password       *string                      `json:"password"`
}

type dayRecordDocument struct {
	Date string `json:"date"`
	Type string `json:"type"`
}

type weeklyRuleDocument struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Type      string `json:"type"`
}

type customHolidayDocument struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
}

func encodeState(state State) stateDocument {
	doc := stateDocument{
		Days:           make(map[string]dayRecordDocument, len(state.Days)),
		WeeklyRules:    make([]weeklyRuleDocument, 0, len(state.WeeklyRules)),
		CustomHolidays: make([]customHolidayDocument, 0, len(state.CustomHolidays)),
		Password:       state.Password,
	}
	for key, record := range state.Days {
		doc.Days[key] = dayRecordDocument{Date: record.Date, Type: string(record.Type)}
	}
	for _, rule := range state.WeeklyRules {
		doc.WeeklyRules = append(doc.WeeklyRules, weeklyRuleDocument{
			DayOfWeek: int(rule.DayOfWeek),
			Type:      string(rule.Type),
		})
	}
	for _, custom := range state.CustomHolidays {
		doc.CustomHolidays = append(doc.CustomHolidays, customHolidayDocument{
			ID:    custom.ID,
			Name:  custom.Name,
			Month: int(custom.Month),
			Day:   custom.Day,
		})
	}
	return doc
}

func decodeState(doc stateDocument) State {
	state := NewState()
	for key, record := range doc.Days {
		state.Days[key] = DayRecord{Date: record.Date, Type: DayType(record.Type)}
	}
	for _, rule := range doc.WeeklyRules {
		state.WeeklyRules = append(state.WeeklyRules, WeeklyRule{
			DayOfWeek: time.Weekday(rule.DayOfWeek),
			Type:      DayType(rule.Type),
		})
	}
	for _, custom := range doc.CustomHolidays {
		state.CustomHolidays = append(state.CustomHolidays, holiday.Custom{
			ID:    custom.ID,
			Name:  custom.Name,
			Month: time.Month(custom.Month),
			Day:   custom.Day,
		})
	}
	state.Password = doc.Password
	return state
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Load(ctx context.Context) (State, bool, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM planner_state WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return NewState(), false, nil
	}
	if err != nil {
		err := fmt.Errorf("could not query planner state: %w", err)
		log.Error(err)
		return NewState(), false, err
	}

	var doc stateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		// A corrupt blob degrades to the default state rather than failing
		// startup. The next save replaces it.
		log.Errorf("stored planner state is not valid JSON, falling back to defaults: %v", err)
		return NewState(), false, nil
	}
	return decodeState(doc), true, nil
}

func (r *RepositoryImpl) Save(ctx context.Context, state State) error {
	data, err := json.Marshal(encodeState(state))
	if err != nil {
		err := fmt.Errorf("could not encode planner state: %w", err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO planner_state (id, data, updated_at) VALUES (1, $1, now())
				ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	if _, err := r.db.ExecContext(ctx, query, data); err != nil {
		err := fmt.Errorf("could not store planner state: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
