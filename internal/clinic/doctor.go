package clinic

import (
	"fmt"
	"strings"
)

// Doctor is identified by its license id and owns its specialty schedule.
type Doctor struct {
	id          string
	name        string
	specialties []Specialty
}

func NewDoctor(name, licenseID string) (*Doctor, error) {
	if name == "" || licenseID == "" {
		return nil, invalidf("doctor name and license id are required")
	}
	return &Doctor{id: licenseID, name: name}, nil
}

func (d *Doctor) ID() string {
	return d.id
}

func (d *Doctor) Name() string {
	return d.name
}

func (d *Doctor) Specialties() []Specialty {
	out := make([]Specialty, len(d.specialties))
	copy(out, d.specialties)
	return out
}

// AddSpecialty appends s unless the doctor already has a specialty with
// exactly the same name.
func (d *Doctor) AddSpecialty(s Specialty) error {
	if s.name == "" {
		return invalidf("specialty is required")
	}
	for _, existing := range d.specialties {
		if existing.name == s.name {
			return invalidf("doctor %s already has specialty %s", d.id, s.name)
		}
	}
	d.specialties = append(d.specialties, s)
	return nil
}

// SpecialtyOn returns the name of the first specialty, in insertion
// order, offered on day.
func (d *Doctor) SpecialtyOn(day string) (string, bool) {
	for _, s := range d.specialties {
		if s.OffersOn(day) {
			return s.name, true
		}
	}
	return "", false
}

func (d *Doctor) String() string {
	if len(d.specialties) == 0 {
		return fmt.Sprintf("Dr. %s (license: %s) - no specialties", d.name, d.id)
	}
	parts := make([]string, len(d.specialties))
	for i, s := range d.specialties {
		parts[i] = s.String()
	}
	return fmt.Sprintf("Dr. %s (license: %s) - specialties: %s", d.name, d.id, strings.Join(parts, ", "))
}

func (d *Doctor) clone() *Doctor {
	return &Doctor{id: d.id, name: d.name, specialties: d.Specialties()}
}
