package clinic

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	EventPatientRegistered  = "PATIENT_REGISTERED"
	EventDoctorRegistered   = "DOCTOR_REGISTERED"
	EventSpecialtyAdded     = "SPECIALTY_ADDED"
	EventAppointmentBooked  = "APPOINTMENT_BOOKED"
	EventPrescriptionIssued = "PRESCRIPTION_ISSUED"
)

// Event is an audit entry emitted after a successful clinic mutation.
// Events are a one-way journal; the clinic never reads them back.
type Event struct {
	ID        uuid.UUID
	Type      string
	PatientID string
	DoctorID  string
	Payload   []byte
	CreatedAt time.Time
}

type EventSink interface {
	Publish(ctx context.Context, ev Event) error
}

// MultiSink publishes to every sink and joins their errors.
type MultiSink []EventSink

func (m MultiSink) Publish(ctx context.Context, ev Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type NopSink struct{}

func (NopSink) Publish(context.Context, Event) error { return nil }
