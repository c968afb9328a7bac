package clinic

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// Clinic is the aggregate that owns every registry. Each operation runs
// all of its checks before mutating anything, so a failed call leaves
// the clinic untouched.
type Clinic struct {
	mu sync.RWMutex

	patients     map[string]Patient
	patientOrder []string
	doctors      map[string]*Doctor
	doctorOrder  []string
	appointments []Appointment
	records      map[string]*ClinicalRecord

	now   func() time.Time
	newID func() uuid.UUID
}

type Option func(*Clinic)

// WithClock sets the clock used to stamp prescriptions.
func WithClock(now func() time.Time) Option {
	return func(c *Clinic) {
		c.now = now
	}
}

func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(c *Clinic) {
		c.newID = gen
	}
}

func New(opts ...Option) *Clinic {
	c := &Clinic{
		patients: make(map[string]Patient),
		doctors:  make(map[string]*Doctor),
		records:  make(map[string]*ClinicalRecord),
		now:      time.Now,
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterPatient stores p and opens an empty clinical record for it.
func (c *Clinic) RegisterPatient(p Patient) error {
	if p.id == "" {
		return invalidf("patient is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.patients[p.id]; ok {
		return fmt.Errorf("%w: id %s", ErrDuplicatePatient, p.id)
	}

	c.patients[p.id] = p
	c.patientOrder = append(c.patientOrder, p.id)
	c.records[p.id] = newClinicalRecord(p)
	return nil
}

// RegisterDoctor stores a copy of d; later schedule changes go through AddSpecialty.
func (c *Clinic) RegisterDoctor(d *Doctor) error {
	if d == nil || d.id == "" {
		return invalidf("doctor is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.doctors[d.id]; ok {
		return fmt.Errorf("%w: license %s", ErrDuplicateDoctor, d.id)
	}

	c.doctors[d.id] = d.clone()
	c.doctorOrder = append(c.doctorOrder, d.id)
	return nil
}

func (c *Clinic) FindDoctor(licenseID string) (*Doctor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, err := c.doctorLocked(licenseID)
	if err != nil {
		return nil, err
	}
	return d.clone(), nil
}

func (c *Clinic) FindPatient(id string) (Patient, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.patientLocked(id)
}

func (c *Clinic) RequirePatientExists(id string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, err := c.patientLocked(id)
	return err
}

func (c *Clinic) RequireDoctorExists(licenseID string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, err := c.doctorLocked(licenseID)
	return err
}

// AddSpecialty extends the schedule of a registered doctor.
func (c *Clinic) AddSpecialty(licenseID string, s Specialty) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, err := c.doctorLocked(licenseID)
	if err != nil {
		return err
	}
	return d.AddSpecialty(s)
}

// BookAppointment books patientID with doctorID at the given time. The
// doctor must be free at exactly that instant and must attend the
// requested specialty on that weekday.
func (c *Clinic) BookAppointment(patientID, doctorID, specialty string, at time.Time) (Appointment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	patient, err := c.patientLocked(patientID)
	if err != nil {
		return Appointment{}, err
	}
	doctor, err := c.doctorLocked(doctorID)
	if err != nil {
		return Appointment{}, err
	}

	for _, existing := range c.appointments {
		if existing.doctor.id == doctorID && existing.at.Equal(at) {
			return Appointment{}, fmt.Errorf("%w: doctor %s on %s",
				ErrSlotTaken, doctorID, at.Format(displayLayout))
		}
	}

	day := WeekdayOf(at)
	offered, ok := doctor.SpecialtyOn(string(day))
	if !ok {
		return Appointment{}, fmt.Errorf("%w: doctor %s on %s", ErrDoctorUnavailable, doctorID, day)
	}
	if !sameSpecialty(offered, specialty) {
		return Appointment{}, &SpecialtyMismatchError{Requested: specialty, Offered: offered, Day: day}
	}

	appt, err := NewAppointment(c.newID(), patient, doctor, at, specialty)
	if err != nil {
		return Appointment{}, err
	}

	c.appointments = append(c.appointments, appt)
	c.records[patientID].addAppointment(appt)
	return appt, nil
}

// IssuePrescription records a prescription stamped with the clinic clock.
func (c *Clinic) IssuePrescription(patientID, doctorID string, medications []string) (Prescription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	patient, err := c.patientLocked(patientID)
	if err != nil {
		return Prescription{}, err
	}
	doctor, err := c.doctorLocked(doctorID)
	if err != nil {
		return Prescription{}, err
	}
	if len(medications) == 0 {
		return Prescription{}, ErrInvalidPrescription
	}

	rx, err := NewPrescription(c.newID(), patient, doctor, medications, c.now())
	if err != nil {
		return Prescription{}, err
	}

	c.records[patientID].addPrescription(rx)
	return rx, nil
}

// ClinicalRecord returns a snapshot of the patient's record.
func (c *Clinic) ClinicalRecord(patientID string) (*ClinicalRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, err := c.patientLocked(patientID); err != nil {
		return nil, err
	}
	return c.records[patientID].snapshot(), nil
}

func (c *Clinic) Patients() []Patient {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Patient, 0, len(c.patientOrder))
	for _, id := range c.patientOrder {
		out = append(out, c.patients[id])
	}
	return out
}

func (c *Clinic) Doctors() []*Doctor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Doctor, 0, len(c.doctorOrder))
	for _, id := range c.doctorOrder {
		out = append(out, c.doctors[id].clone())
	}
	return out
}

func (c *Clinic) Appointments() []Appointment {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Appointment, len(c.appointments))
	copy(out, c.appointments)
	return out
}

func (c *Clinic) patientLocked(id string) (Patient, error) {
	p, ok := c.patients[id]
	if !ok {
		return Patient{}, fmt.Errorf("%w: id %s", ErrPatientNotFound, id)
	}
	return p, nil
}

func (c *Clinic) doctorLocked(licenseID string) (*Doctor, error) {
	d, ok := c.doctors[licenseID]
	if !ok {
		return nil, fmt.Errorf("%w: license %s", ErrDoctorNotFound, licenseID)
	}
	return d, nil
}

func sameSpecialty(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}
