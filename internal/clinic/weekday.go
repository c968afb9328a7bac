package clinic

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Weekday is one of the seven canonical lowercase Spanish weekday names.
type Weekday string

const (
	Monday    Weekday = "lunes"
	Tuesday   Weekday = "martes"
	Wednesday Weekday = "miércoles"
	Thursday  Weekday = "jueves"
	Friday    Weekday = "viernes"
	Saturday  Weekday = "sábado"
	Sunday    Weekday = "domingo"
)

// Week lists the canonical weekdays, Monday first.
var Week = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday matches s case-insensitively against the canonical names.
func ParseWeekday(s string) (Weekday, error) {
	d := Weekday(foldDay(s))
	for _, w := range Week {
		if d == w {
			return w, nil
		}
	}
	return "", invalidf("unknown weekday %q", s)
}

// WeekdayOf returns the canonical weekday of t, evaluated in t's own location.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday counts from Sunday = 0
	return Week[(int(t.Weekday())+6)%7]
}

func (w Weekday) String() string {
	return string(w)
}

// Caser values keep state, so a fresh one is built per call.
func foldDay(s string) string {
	return cases.Lower(language.Spanish).String(strings.TrimSpace(s))
}
