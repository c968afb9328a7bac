package clinic

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidValue        = errors.New("invalid value")
	ErrDuplicatePatient    = errors.New("patient already registered")
	ErrDuplicateDoctor     = errors.New("doctor already registered")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorUnavailable   = errors.New("doctor does not attend that day")
	ErrInvalidSpecialty    = errors.New("specialty not offered that day")
	ErrSlotTaken           = errors.New("doctor already has an appointment at that time")
	ErrInvalidPrescription = errors.New("prescription must include at least one medication")
)

// SpecialtyMismatchError is returned by BookAppointment when the doctor
// attends on the requested day but for a different specialty.
type SpecialtyMismatchError struct {
	Requested string
	Offered   string
	Day       Weekday
}

func (e *SpecialtyMismatchError) Error() string {
	return fmt.Sprintf("%s: doctor does not attend %s on %s, that day attends %s",
		ErrInvalidSpecialty, e.Requested, e.Day, e.Offered)
}

func (e *SpecialtyMismatchError) Unwrap() error {
	return ErrInvalidSpecialty
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}

// Code returns a stable snake_case identifier for err, suitable for API
// responses and metric labels.
func Code(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidValue):
		return "invalid_value"
	case errors.Is(err, ErrDuplicatePatient):
		return "duplicate_patient"
	case errors.Is(err, ErrDuplicateDoctor):
		return "duplicate_doctor"
	case errors.Is(err, ErrPatientNotFound):
		return "patient_not_found"
	case errors.Is(err, ErrDoctorNotFound):
		return "doctor_not_found"
	case errors.Is(err, ErrDoctorUnavailable):
		return "doctor_unavailable"
	case errors.Is(err, ErrInvalidSpecialty):
		return "invalid_specialty"
	case errors.Is(err, ErrSlotTaken):
		return "slot_taken"
	case errors.Is(err, ErrInvalidPrescription):
		return "invalid_prescription"
	default:
		return "internal_error"
	}
}
