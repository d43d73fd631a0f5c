package planner

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/workplanner/workplanner/internal/rest"
	"github.com/workplanner/workplanner/pkg/holiday"
)

type ResolvedDayDTO struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Explicit    bool   `json:"explicit"`
	IsHoliday   bool   `json:"isHoliday"`
	HolidayName string `json:"holidayName,omitempty"`
}

type WeeklyRuleDTO struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Type      string `json:"type"`
}

type CustomHolidayDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetMonth returns the resolved classification of every day in a month.
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	days := h.service.ResolveMonth(year, month)
	writeJSON(w, resolvedDaysToDTO(days))
}

// SetDay stores an explicit classification for one date.
func (h *Handler) SetDay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	var body struct {
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	dayType, err := ParseDayType(body.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid day type",
			"Type must be one of: smart, office, holiday, non-working")
		return
	}

	resolved := h.service.SetDay(r.Context(), date, dayType)
	writeJSON(w, resolvedDayToDTO(resolved))
}

// ClearDay removes the explicit classification for one date.
func (h *Handler) ClearDay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	resolved, err := h.service.ClearDay(r.Context(), date)
	if err != nil {
		if errors.Is(err, ErrDayRecordNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, resolvedDayToDTO(resolved))
}

// ApplyRules fills a month from the weekly rules and returns the resolved month.
func (h *Handler) ApplyRules(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	days := h.service.ApplyRules(r.Context(), year, month)
	writeJSON(w, resolvedDaysToDTO(days))
}

// GetRules lists the configured weekly rules.
func (h *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rules := h.service.WeeklyRules()
	dtos := make([]WeeklyRuleDTO, 0, len(rules))
	for _, rule := range rules {
		dtos = append(dtos, WeeklyRuleDTO{DayOfWeek: int(rule.DayOfWeek), Type: string(rule.Type)})
	}
	writeJSON(w, dtos)
}

// PutRule adds or replaces the weekly rule for a weekday.
func (h *Handler) PutRule(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body WeeklyRuleDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}
	if body.DayOfWeek < 0 || body.DayOfWeek > 6 {
		writeError(w, http.StatusBadRequest, "Invalid dayOfWeek", "dayOfWeek must be between 0 (Sunday) and 6 (Saturday)")
		return
	}
	dayType, err := ParseDayType(body.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid day type",
			"Type must be one of: smart, office, holiday, non-working")
		return
	}

	h.service.PutWeeklyRule(r.Context(), WeeklyRule{DayOfWeek: time.Weekday(body.DayOfWeek), Type: dayType})
	writeJSON(w, body)
}

// DeleteRule removes the weekly rule for a weekday.
func (h *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dayOfWeek, err := strconv.Atoi(vars["dayOfWeek"])
	if err != nil || dayOfWeek < 0 || dayOfWeek > 6 {
		w.Header().Set("Content-Type", "application/json")
		writeError(w, http.StatusBadRequest, "Invalid dayOfWeek", "dayOfWeek must be between 0 (Sunday) and 6 (Saturday)")
		return
	}

	if err := h.service.DeleteWeeklyRule(r.Context(), time.Weekday(dayOfWeek)); err != nil {
		if errors.Is(err, ErrRuleNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetCustomHolidays lists the configured custom holidays.
func (h *Handler) GetCustomHolidays(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	customs := h.service.CustomHolidays()
	dtos := make([]CustomHolidayDTO, 0, len(customs))
	for _, custom := range customs {
		dtos = append(dtos, customHolidayToDTO(custom))
	}
	writeJSON(w, dtos)
}

// AddCustomHoliday creates a new custom holiday with a server-assigned id.
func (h *Handler) AddCustomHoliday(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body struct {
		Name  string `json:"name"`
		Month int    `json:"month"`
		Day   int    `json:"day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format", "")
		return
	}

	custom, err := h.service.AddCustomHoliday(r.Context(), body.Name, time.Month(body.Month), body.Day)
	if err != nil {
		if errors.Is(err, ErrInvalidCustomHoliday) {
			writeError(w, http.StatusBadRequest, "Invalid custom holiday", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, customHolidayToDTO(custom))
}

// DeleteCustomHoliday removes a custom holiday by id.
func (h *Handler) DeleteCustomHoliday(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.service.RemoveCustomHoliday(r.Context(), vars["id"]); err != nil {
		if errors.Is(err, ErrCustomHolidayNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func yearMonthParams(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", "year must be a number")
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month", "month must be a number between 1 and 12")
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func dateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	vars := mux.Vars(r)
	date, err := ParseDate(vars["date"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format", "Date must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return date, true
}

func resolvedDayToDTO(day ResolvedDay) ResolvedDayDTO {
	return ResolvedDayDTO{
		Date:        FormatDate(day.Date),
		Type:        string(day.Type),
		Explicit:    day.Explicit,
		IsHoliday:   day.IsHoliday,
		HolidayName: day.HolidayName,
	}
}

func resolvedDaysToDTO(days []ResolvedDay) []ResolvedDayDTO {
	dtos := make([]ResolvedDayDTO, 0, len(days))
	for _, day := range days {
		dtos = append(dtos, resolvedDayToDTO(day))
	}
	return dtos
}

func customHolidayToDTO(custom holiday.Custom) CustomHolidayDTO {
	return CustomHolidayDTO{
		ID:    custom.ID,
		Name:  custom.Name,
		Month: int(custom.Month),
		Day:   custom.Day,
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string, details string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
