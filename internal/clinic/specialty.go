package clinic

import (
	"fmt"
	"strings"
)

// Specialty is a medical discipline together with the weekdays it is offered.
type Specialty struct {
	name string
	days []Weekday
}

func NewSpecialty(name string, days []string) (Specialty, error) {
	if name == "" {
		return Specialty{}, invalidf("specialty name is required")
	}
	if len(days) == 0 {
		return Specialty{}, invalidf("specialty %s needs at least one day", name)
	}

	normalized := make([]Weekday, 0, len(days))
	seen := make(map[Weekday]bool, len(days))
	for _, raw := range days {
		d, err := ParseWeekday(raw)
		if err != nil {
			return Specialty{}, err
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		normalized = append(normalized, d)
	}

	return Specialty{name: name, days: normalized}, nil
}

func (s Specialty) Name() string {
	return s.name
}

func (s Specialty) Days() []Weekday {
	out := make([]Weekday, len(s.days))
	copy(out, s.days)
	return out
}

// OffersOn reports whether the specialty is offered on day. Unknown day
// names are simply not offered.
func (s Specialty) OffersOn(day string) bool {
	d := Weekday(foldDay(day))
	for _, offered := range s.days {
		if offered == d {
			return true
		}
	}
	return false
}

func (s Specialty) String() string {
	days := make([]string, len(s.days))
	for i, d := range s.days {
		days[i] = string(d)
	}
	return fmt.Sprintf("%s (days: %s)", s.name, strings.Join(days, ", "))
}
