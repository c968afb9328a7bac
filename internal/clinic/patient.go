package clinic

import "fmt"

// Patient is identified by its national id. It never changes after creation.
type Patient struct {
	id        string
	name      string
	birthDate string
}

func NewPatient(name, id, birthDate string) (Patient, error) {
	if name == "" || id == "" || birthDate == "" {
		return Patient{}, invalidf("patient name, id and birth date are required")
	}
	return Patient{id: id, name: name, birthDate: birthDate}, nil
}

func (p Patient) ID() string        { return p.id }
func (p Patient) Name() string      { return p.name }
func (p Patient) BirthDate() string { return p.birthDate }

func (p Patient) String() string {
	return fmt.Sprintf("Patient: %s (id: %s)", p.name, p.id)
}
