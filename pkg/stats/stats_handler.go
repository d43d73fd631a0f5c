package stats

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/workplanner/workplanner/internal/rest"
)

type MonthlyStatsDTO struct {
	TotalDays          int  `json:"totalDays"`
	WorkingDays        int  `json:"workingDays"`
	SmartDays          int  `json:"smartDays"`
	OfficeDays         int  `json:"officeDays"`
	HolidayDays        int  `json:"holidayDays"`
	NonWorkingDays     int  `json:"nonWorkingDays"`
	SmartQuotaExceeded bool `json:"smartQuotaExceeded"`
}

type StatsHandler struct {
	statsService  StatsService
	monthRenderer MonthRenderer
	stateProvider StateProvider
}

func NewStatsHandler(statsService StatsService, monthRenderer MonthRenderer, stateProvider StateProvider) *StatsHandler {
	return &StatsHandler{statsService, monthRenderer, stateProvider}
}

// GetStats returns monthly aggregate statistics as JSON, or the CSV rendering
// of the month when the client asks for text/csv.
func (handler *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	year, month, ok := handler.yearMonthParams(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv := handler.monthRenderer.RenderMonth(year, month, handler.stateProvider.Snapshot())
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	stats := handler.statsService.MonthlyStats(year, month)
	if err := json.NewEncoder(w).Encode(statsToDTO(stats)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ExportMonth returns the CSV rendering of a month as a file download.
func (handler *StatsHandler) ExportMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := handler.yearMonthParams(w, r)
	if !ok {
		return
	}

	filename := fmt.Sprintf("work-planner-%d-%02d.csv", year, int(month))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	csv := handler.monthRenderer.RenderMonth(year, month, handler.stateProvider.Snapshot())
	if _, err := w.Write([]byte(csv)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *StatsHandler) yearMonthParams(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		handler.writeError(w, "Invalid year", "year must be a number")
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		handler.writeError(w, "Invalid month", "month must be a number between 1 and 12")
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func (handler *StatsHandler) writeError(w http.ResponseWriter, message string, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func statsToDTO(stats MonthlyStats) MonthlyStatsDTO {
	return MonthlyStatsDTO{
		TotalDays:          stats.TotalDays,
		WorkingDays:        stats.WorkingDays,
		SmartDays:          stats.SmartDays,
		OfficeDays:         stats.OfficeDays,
		HolidayDays:        stats.HolidayDays,
		NonWorkingDays:     stats.NonWorkingDays,
		SmartQuotaExceeded: stats.SmartQuotaExceeded,
	}
}
