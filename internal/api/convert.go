package api

import "github.com/hackgods/clinic-scheduling/internal/clinic"

func toPatientResponse(p clinic.Patient) PatientResponse {
	return PatientResponse{ID: p.ID(), Name: p.Name(), BirthDate: p.BirthDate()}
}

func toDoctorResponse(d *clinic.Doctor) DoctorResponse {
	specs := d.Specialties()
	out := DoctorResponse{
		LicenseID:   d.ID(),
		Name:        d.Name(),
		Specialties: make([]SpecialtyResponse, 0, len(specs)),
	}
	for _, s := range specs {
		days := s.Days()
		names := make([]string, len(days))
		for i, day := range days {
			names[i] = day.String()
		}
		out.Specialties = append(out.Specialties, SpecialtyResponse{Name: s.Name(), Days: names})
	}
	return out
}

func toAppointmentResponse(a clinic.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:        a.ID(),
		PatientID: a.Patient().ID(),
		DoctorID:  a.DoctorID(),
		Specialty: a.Specialty(),
		Date:      a.Time().Format(dateLayout),
		Time:      a.Time().Format(timeLayout),
		Weekday:   a.Weekday().String(),
	}
}

func toPrescriptionResponse(p clinic.Prescription) PrescriptionResponse {
	return PrescriptionResponse{
		ID:          p.ID(),
		PatientID:   p.Patient().ID(),
		DoctorID:    p.DoctorID(),
		Medications: p.Medications(),
		IssuedAt:    p.IssuedAt(),
	}
}

func toRecordResponse(r *clinic.ClinicalRecord) ClinicalRecordResponse {
	appts := r.Appointments()
	rxs := r.Prescriptions()
	out := ClinicalRecordResponse{
		Patient:       toPatientResponse(r.Patient()),
		Appointments:  make([]AppointmentResponse, 0, len(appts)),
		Prescriptions: make([]PrescriptionResponse, 0, len(rxs)),
	}
	for _, a := range appts {
		out.Appointments = append(out.Appointments, toAppointmentResponse(a))
	}
	for _, p := range rxs {
		out.Prescriptions = append(out.Prescriptions, toPrescriptionResponse(p))
	}
	return out
}
