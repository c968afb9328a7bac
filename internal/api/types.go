package api

import (
	"time"

	"github.com/google/uuid"
)

const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04"
)

type CreatePatientRequest struct {
	Name      string `json:"name" validate:"required"`
	ID        string `json:"id" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required,datetime=02/01/2006"`
}

type SpecialtyRequest struct {
	Name string   `json:"name" validate:"required"`
	Days []string `json:"days" validate:"required,min=1,dive,required"`
}

type CreateDoctorRequest struct {
	Name        string             `json:"name" validate:"required"`
	LicenseID   string             `json:"license_id" validate:"required"`
	Specialties []SpecialtyRequest `json:"specialties" validate:"dive"`
}

type BookAppointmentRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	DoctorID  string `json:"doctor_id" validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=02/01/2006"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
}

// Medications is not validated here; an empty list is rejected by the clinic.
type IssuePrescriptionRequest struct {
	PatientID   string   `json:"patient_id" validate:"required"`
	DoctorID    string   `json:"doctor_id" validate:"required"`
	Medications []string `json:"medications"`
}

type PatientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

type SpecialtyResponse struct {
	Name string   `json:"name"`
	Days []string `json:"days"`
}

type DoctorResponse struct {
	LicenseID   string              `json:"license_id"`
	Name        string              `json:"name"`
	Specialties []SpecialtyResponse `json:"specialties"`
}

type AppointmentResponse struct {
	ID        uuid.UUID `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	Specialty string    `json:"specialty"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Weekday   string    `json:"weekday"`
}

type PrescriptionResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   string    `json:"patient_id"`
	DoctorID    string    `json:"doctor_id"`
	Medications []string  `json:"medications"`
	IssuedAt    time.Time `json:"issued_at"`
}

type ClinicalRecordResponse struct {
	Patient       PatientResponse        `json:"patient"`
	Appointments  []AppointmentResponse  `json:"appointments"`
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
}

type ErrorResponse struct {
	Error            string `json:"error"`
	Details          string `json:"details,omitempty"`
	OfferedSpecialty string `json:"offered_specialty,omitempty"`
}
