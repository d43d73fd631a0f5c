package holiday

import (
	"time"
)

// Custom is a user-defined holiday that recurs every year on the same
// month/day, e.g. a local patron saint day.
type Custom struct {
	ID    string
	Name  string
	Month time.Month
	Day   int
}

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

// Fixed-date Italian national holidays. Easter Sunday and Easter Monday are
// computed per year and appended by National.
var fixedHolidays = []fixedHoliday{
	{time.January, 1, "Capodanno"},
	{time.January, 6, "Epifania"},
	{time.April, 25, "Liberazione"},
	{time.May, 1, "Festa del Lavoro"},
	{time.June, 2, "Festa della Repubblica"},
	{time.August, 15, "Ferragosto"},
	{time.November, 1, "Tutti i Santi"},
	{time.December, 8, "Immacolata Concezione"},
	{time.December, 25, "Natale"},
	{time.December, 26, "Santo Stefano"},
}

// Easter returns the date of Easter Sunday for the given year, computed with
// the anonymous Gregorian Computus algorithm.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// National returns all Italian national holidays for the given year: the ten
// fixed dates plus Easter Sunday and Easter Monday.
func National(year int) []time.Time {
	holidays := make([]time.Time, 0, len(fixedHolidays)+2)
	for _, fixed := range fixedHolidays {
		holidays = append(holidays, time.Date(year, fixed.month, fixed.day, 0, 0, 0, 0, time.Local))
	}
	easter := Easter(year)
	holidays = append(holidays, easter, easter.AddDate(0, 0, 1))
	return holidays
}

// IsNational reports whether date falls on an Italian national holiday.
// Only the calendar day is compared, time of day is ignored.
func IsNational(date time.Time) bool {
	for _, h := range National(date.Year()) {
		if sameDay(h, date) {
			return true
		}
	}
	return false
}

// Name returns the Italian display name of the national holiday falling on
// date, or false when the date is not a national holiday.
func Name(date time.Time) (string, bool) {
	easter := Easter(date.Year())
	if sameDay(date, easter) {
		return "Pasqua", true
	}
	if sameDay(date, easter.AddDate(0, 0, 1)) {
		return "Lunedì dell'Angelo", true
	}
	for _, fixed := range fixedHolidays {
		if date.Month() == fixed.month && date.Day() == fixed.day {
			return fixed.name, true
		}
	}
	return "", false
}

// MatchCustom returns the first custom holiday whose month and day equal the
// date's, regardless of year. The bool result is false when nothing matches.
func MatchCustom(date time.Time, customHolidays []Custom) (Custom, bool) {
	for _, custom := range customHolidays {
		if custom.Month == date.Month() && custom.Day == date.Day() {
			return custom, true
		}
	}
	return Custom{}, false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
