package clinic

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackgods/clinic-scheduling/internal/metrics"
)

// Service wraps the Clinic aggregate with logging, metrics and the event
// journal. The aggregate stays the only source of truth; journal failures
// are logged and never fail the operation.
type Service struct {
	clinic       *Clinic
	sink         EventSink
	log          *zap.Logger
	eventTimeout time.Duration
}

func NewService(c *Clinic, sink EventSink, log *zap.Logger, eventTimeout time.Duration) *Service {
	if sink == nil {
		sink = NopSink{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		clinic:       c,
		sink:         sink,
		log:          log,
		eventTimeout: eventTimeout,
	}
}

func (s *Service) RegisterPatient(ctx context.Context, p Patient) error {
	err := s.clinic.RegisterPatient(p)
	s.observe("register_patient", err, zap.String("patient_id", p.ID()))
	if err != nil {
		return err
	}

	s.logEvent(ctx, EventPatientRegistered, p.ID(), "", map[string]any{
		"name":       p.Name(),
		"birth_date": p.BirthDate(),
	})
	return nil
}

func (s *Service) RegisterDoctor(ctx context.Context, d *Doctor) error {
	err := s.clinic.RegisterDoctor(d)
	var id string
	if d != nil {
		id = d.ID()
	}
	s.observe("register_doctor", err, zap.String("doctor_id", id))
	if err != nil {
		return err
	}

	names := make([]string, 0, len(d.specialties))
	for _, sp := range d.specialties {
		names = append(names, sp.Name())
	}
	s.logEvent(ctx, EventDoctorRegistered, "", d.ID(), map[string]any{
		"name":        d.Name(),
		"specialties": names,
	})
	return nil
}

func (s *Service) AddSpecialty(ctx context.Context, licenseID string, sp Specialty) error {
	err := s.clinic.AddSpecialty(licenseID, sp)
	s.observe("add_specialty", err, zap.String("doctor_id", licenseID), zap.String("specialty", sp.Name()))
	if err != nil {
		return err
	}

	s.logEvent(ctx, EventSpecialtyAdded, "", licenseID, map[string]any{
		"specialty": sp.Name(),
		"days":      sp.Days(),
	})
	return nil
}

func (s *Service) BookAppointment(ctx context.Context, patientID, doctorID, specialty string, at time.Time) (Appointment, error) {
	appt, err := s.clinic.BookAppointment(patientID, doctorID, specialty, at)
	s.observe("book_appointment", err,
		zap.String("patient_id", patientID),
		zap.String("doctor_id", doctorID),
		zap.String("specialty", specialty),
		zap.Time("at", at),
	)
	if err != nil {
		return Appointment{}, err
	}

	metrics.AppointmentsBooked.WithLabelValues(appt.Weekday().String()).Inc()
	s.logEvent(ctx, EventAppointmentBooked, patientID, doctorID, map[string]any{
		"appointment_id": appt.ID().String(),
		"specialty":      appt.Specialty(),
		"at":             appt.Time(),
		"weekday":        appt.Weekday(),
	})
	return appt, nil
}

func (s *Service) IssuePrescription(ctx context.Context, patientID, doctorID string, medications []string) (Prescription, error) {
	rx, err := s.clinic.IssuePrescription(patientID, doctorID, medications)
	s.observe("issue_prescription", err,
		zap.String("patient_id", patientID),
		zap.String("doctor_id", doctorID),
		zap.Int("medications", len(medications)),
	)
	if err != nil {
		return Prescription{}, err
	}

	s.logEvent(ctx, EventPrescriptionIssued, patientID, doctorID, map[string]any{
		"prescription_id": rx.ID().String(),
		"medications":     rx.Medications(),
		"issued_at":       rx.IssuedAt(),
	})
	return rx, nil
}

func (s *Service) Patient(id string) (Patient, error) {
	return s.clinic.FindPatient(id)
}

func (s *Service) Doctor(licenseID string) (*Doctor, error) {
	return s.clinic.FindDoctor(licenseID)
}

func (s *Service) ClinicalRecord(patientID string) (*ClinicalRecord, error) {
	return s.clinic.ClinicalRecord(patientID)
}

func (s *Service) Patients() []Patient {
	return s.clinic.Patients()
}

func (s *Service) Doctors() []*Doctor {
	return s.clinic.Doctors()
}

func (s *Service) Appointments() []Appointment {
	return s.clinic.Appointments()
}

func (s *Service) observe(op string, err error, fields ...zap.Field) {
	code := Code(err)
	metrics.ClinicOperations.WithLabelValues(op, code).Inc()

	fields = append(fields, zap.String("operation", op), zap.String("result", code))
	switch code {
	case "ok":
		s.log.Info("clinic operation", fields...)
	case "internal_error":
		s.log.Error("clinic operation failed", append(fields, zap.Error(err))...)
	default:
		s.log.Warn("clinic operation rejected", append(fields, zap.Error(err))...)
	}
}

func (s *Service) logEvent(ctx context.Context, eventType, patientID, doctorID string, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("marshal event payload", zap.String("event_type", eventType), zap.Error(err))
		data = nil
	}

	ev := Event{
		ID:        uuid.New(),
		Type:      eventType,
		PatientID: patientID,
		DoctorID:  doctorID,
		Payload:   data,
		CreatedAt: time.Now(),
	}

	if s.eventTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.eventTimeout)
		defer cancel()
	}

	if err := s.sink.Publish(ctx, ev); err != nil {
		s.log.Error("publish event",
			zap.String("event_type", eventType),
			zap.String("event_id", ev.ID.String()),
			zap.Error(err),
		)
	}
}
