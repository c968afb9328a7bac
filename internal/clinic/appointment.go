package clinic

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const displayLayout = "02/01/2006 15:04"

// Appointment binds a patient and a doctor to a timestamp and specialty.
// The doctor is captured as it was when the appointment was booked.
type Appointment struct {
	id        uuid.UUID
	patient   Patient
	doctor    *Doctor
	at        time.Time
	specialty string
}

func NewAppointment(id uuid.UUID, patient Patient, doctor *Doctor, at time.Time, specialty string) (Appointment, error) {
	if patient.id == "" || doctor == nil {
		return Appointment{}, invalidf("appointment needs a patient and a doctor")
	}
	if at.IsZero() {
		return Appointment{}, invalidf("appointment needs a date and time")
	}
	if specialty == "" {
		return Appointment{}, invalidf("appointment needs a specialty")
	}
	return Appointment{
		id:        id,
		patient:   patient,
		doctor:    doctor.clone(),
		at:        at,
		specialty: specialty,
	}, nil
}

func (a Appointment) ID() uuid.UUID     { return a.id }
func (a Appointment) Patient() Patient  { return a.patient }
func (a Appointment) Doctor() *Doctor   { return a.doctor.clone() }
func (a Appointment) DoctorID() string  { return a.doctor.id }
func (a Appointment) Time() time.Time   { return a.at }
func (a Appointment) Specialty() string { return a.specialty }
func (a Appointment) Weekday() Weekday  { return WeekdayOf(a.at) }

func (a Appointment) String() string {
	return fmt.Sprintf("Appointment: %s with Dr. %s - %s on %s",
		a.patient, a.doctor.id, a.specialty, a.at.Format(displayLayout))
}
