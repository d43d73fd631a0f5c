package stats

import (
	"strings"
	"time"

	"github.com/workplanner/workplanner/pkg/planner"
)

var csvHeader = []string{"Data", "Giorno", "Tipo", "Festivo", "NomeFestivita"}

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "domenica",
	time.Monday:    "lunedì",
	time.Tuesday:   "martedì",
	time.Wednesday: "mercoledì",
	time.Thursday:  "giovedì",
	time.Friday:    "venerdì",
	time.Saturday:  "sabato",
}

var typeLabels = map[planner.DayType]string{
	planner.DaySmartWorking: "Smart Working",
	planner.DayOffice:       "Ufficio",
	planner.DayHoliday:      "Ferie",
	planner.DayNonWorking:   "Non Lavorativo",
}

type MonthRenderer interface {
	RenderMonth(year int, month time.Month, state planner.State) string
}

// CsvMonthRendererImpl serializes one month of resolved days as CSV. Every
// field is quoted unconditionally, which encoding/csv does not offer, so the
// escaping is done by hand.
type CsvMonthRendererImpl struct {
}

func NewCsvMonthRenderer() *CsvMonthRendererImpl {
	return &CsvMonthRendererImpl{}
}

func (t *CsvMonthRendererImpl) RenderMonth(year int, month time.Month, state planner.State) string {
	days := planner.ResolveMonth(year, month, state)

	rows := make([][]string, 0, len(days)+1)
	rows = append(rows, csvHeader)
	for _, day := range days {
		festivo := "No"
		if day.IsHoliday {
			festivo = "Sì"
		}
		rows = append(rows, []string{
			planner.FormatDate(day.Date),
			weekdayNames[day.Date.Weekday()],
			typeLabels[day.Type],
			festivo,
			day.HolidayName,
		})
	}

	var b strings.Builder
	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(csvEscape(field))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// csvEscape trims the field, doubles embedded quotes, and wraps the result in
// double quotes.
func csvEscape(field string) string {
	escaped := strings.ReplaceAll(strings.TrimSpace(field), `"`, `""`)
	return `"` + escaped + `"`
}
