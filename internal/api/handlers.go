package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hackgods/clinic-scheduling/internal/clinic"
)

// ClinicService is the subset of clinic.Service the handlers need.
type ClinicService interface {
	RegisterPatient(ctx context.Context, p clinic.Patient) error
	RegisterDoctor(ctx context.Context, d *clinic.Doctor) error
	AddSpecialty(ctx context.Context, licenseID string, s clinic.Specialty) error
	BookAppointment(ctx context.Context, patientID, doctorID, specialty string, at time.Time) (clinic.Appointment, error)
	IssuePrescription(ctx context.Context, patientID, doctorID string, medications []string) (clinic.Prescription, error)

	Patient(id string) (clinic.Patient, error)
	Doctor(licenseID string) (*clinic.Doctor, error)
	ClinicalRecord(patientID string) (*clinic.ClinicalRecord, error)
	Patients() []clinic.Patient
	Doctors() []*clinic.Doctor
	Appointments() []clinic.Appointment
}

func createPatientHandler(svc ClinicService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePatientRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeRequestError(w, err)
			return
		}

		p, err := clinic.NewPatient(strings.TrimSpace(req.Name), strings.TrimSpace(req.ID), req.BirthDate)
		if err != nil {
			writeClinicError(w, err)
			return
		}
		if err := svc.RegisterPatient(r.Context(), p); err != nil {
			writeClinicError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPatientResponse(p))
	}
}

func listPatientsHandler(svc ClinicService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patients := svc.Patients()
		resp := make([]PatientResponse, 0, len(patients))
		for _, p := range patients {
			resp = append(resp, toPatientResponse(p))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func getPatientHandler(svc ClinicService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Patient(chi.URLParam(r, "id"))
		if err != nil {
			writeClinicError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

func getClinicalRecordHandler(svc ClinicService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.ClinicalRecord(chi.URLParam(r, "id"))
		if err != nil {
			writeClinicError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

func createDoctorHandler(svc ClinicService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDoctorRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeRequestError(w, err)
			return
		}

		d, err := clinic.NewDoctor(strings.TrimSpace(req.Name), strings.TrimSpace(req.LicenseID))
		if err != nil {
			writeClinicError(w, err)
			return
		}
		for _, sr := range req.Specialties {
			s, err := clinic.NewSpecialty(strings.TrimSpace(sr.Name), sr.Days)
			if err != nil {
				writeClinicError(w, err)
				return
			}
			if err := d.AddSpecialty(s); err != nil {
				writeClinicError(w, err)
				return
			}
		}

		if err := svc.RegisterDoctor(r.Context(), d); err != nil {
			writeClinicError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toDoctorResponse(d))
	}
}

func listDoctorsHandler(svc ClinicService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctors := svc.Doctors()
		resp := make([]DoctorResponse, 0, len(doctors))
		for _, d := range doctors {
			resp = append(resp, toDoctorResponse(d))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func getDoctorHandler(svc ClinicService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Doctor(chi.URLParam(r, "id"))
		if err != nil {
			writeClinicError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDoctorResponse(d))
	}
}

func addSpecialtyHandler(svc ClinicService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		licenseID := chi.URLParam(r, "id")

		var req SpecialtyRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeRequestError(w, err)
			return
		}

		s, err := clinic.NewSpecialty(strings.TrimSpace(req.Name), req.Days)
		if err != nil {
			writeClinicError(w, err)
			return
		}
		if err := svc.AddSpecialty(r.Context(), licenseID, s); err != nil {
			writeClinicError(w, err)
			return
		}

		d, err := svc.Doctor(licenseID)
		if err != nil {
			writeClinicError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toDoctorResponse(d))
	}
}

func bookAppointmentHandler(svc ClinicService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookAppointmentRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeRequestError(w, err)
			return
		}

		at, err := time.ParseInLocation(dateLayout+" "+timeLayout, req.Date+" "+req.Time, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_datetime", "use dd/mm/yyyy for date and HH:MM for time")
			return
		}

		appt, err := svc.BookAppointment(r.Context(), req.PatientID, req.DoctorID, strings.TrimSpace(req.Specialty), at)
		if err != nil {
			writeClinicError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(appt))
	}
}

func listAppointmentsHandler(svc ClinicService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appts := svc.Appointments()
		resp := make([]AppointmentResponse, 0, len(appts))
		for _, a := range appts {
			resp = append(resp, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func issuePrescriptionHandler(svc ClinicService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IssuePrescriptionRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeRequestError(w, err)
			return
		}

		meds := make([]string, 0, len(req.Medications))
		for _, m := range req.Medications {
			if m = strings.TrimSpace(m); m != "" {
				meds = append(meds, m)
			}
		}

		rx, err := svc.IssuePrescription(r.Context(), req.PatientID, req.DoctorID, meds)
		if err != nil {
			writeClinicError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPrescriptionResponse(rx))
	}
}
