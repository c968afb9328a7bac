package clinic

import (
	"fmt"
	"strings"
)

// ClinicalRecord is the append-only history of a single patient.
type ClinicalRecord struct {
	patient       Patient
	appointments  []Appointment
	prescriptions []Prescription
}

func newClinicalRecord(p Patient) *ClinicalRecord {
	return &ClinicalRecord{patient: p}
}

func (r *ClinicalRecord) Patient() Patient {
	return r.patient
}

func (r *ClinicalRecord) Appointments() []Appointment {
	out := make([]Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out
}

func (r *ClinicalRecord) Prescriptions() []Prescription {
	out := make([]Prescription, len(r.prescriptions))
	copy(out, r.prescriptions)
	return out
}

func (r *ClinicalRecord) addAppointment(a Appointment) {
	r.appointments = append(r.appointments, a)
}

func (r *ClinicalRecord) addPrescription(p Prescription) {
	r.prescriptions = append(r.prescriptions, p)
}

func (r *ClinicalRecord) snapshot() *ClinicalRecord {
	return &ClinicalRecord{
		patient:       r.patient,
		appointments:  r.Appointments(),
		prescriptions: r.Prescriptions(),
	}
}

func (r *ClinicalRecord) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Clinical record of %s\n", r.patient)
	b.WriteString(strings.Repeat("=", 50) + "\n")

	fmt.Fprintf(&b, "APPOINTMENTS (%d):\n", len(r.appointments))
	if len(r.appointments) == 0 {
		b.WriteString("  No appointments.\n")
	}
	for i, a := range r.appointments {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, a)
	}

	fmt.Fprintf(&b, "\nPRESCRIPTIONS (%d):\n", len(r.prescriptions))
	if len(r.prescriptions) == 0 {
		b.WriteString("  No prescriptions.\n")
	}
	for i, p := range r.prescriptions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, p)
	}
	return b.String()
}
