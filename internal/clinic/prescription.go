package clinic

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prescription is a list of medications a doctor issued to a patient.
type Prescription struct {
	id          uuid.UUID
	patient     Patient
	doctor      *Doctor
	medications []string
	issuedAt    time.Time
}

func NewPrescription(id uuid.UUID, patient Patient, doctor *Doctor, medications []string, issuedAt time.Time) (Prescription, error) {
	if patient.id == "" || doctor == nil {
		return Prescription{}, invalidf("prescription needs a patient and a doctor")
	}
	if len(medications) == 0 {
		return Prescription{}, invalidf("prescription needs at least one medication")
	}
	meds := make([]string, len(medications))
	for i, m := range medications {
		if strings.TrimSpace(m) == "" {
			return Prescription{}, invalidf("medication %d is blank", i+1)
		}
		meds[i] = m
	}
	return Prescription{
		id:          id,
		patient:     patient,
		doctor:      doctor.clone(),
		medications: meds,
		issuedAt:    issuedAt,
	}, nil
}

func (p Prescription) ID() uuid.UUID       { return p.id }
func (p Prescription) Patient() Patient    { return p.patient }
func (p Prescription) Doctor() *Doctor     { return p.doctor.clone() }
func (p Prescription) DoctorID() string    { return p.doctor.id }
func (p Prescription) IssuedAt() time.Time { return p.issuedAt }

func (p Prescription) Medications() []string {
	out := make([]string, len(p.medications))
	copy(out, p.medications)
	return out
}

func (p Prescription) String() string {
	return fmt.Sprintf("Prescription of %s - Dr. %s for %s - medications: %s",
		p.issuedAt.Format(displayLayout), p.doctor.id, p.patient, strings.Join(p.medications, ", "))
}
