package clinic

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday9am  = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	tuesday9am = time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)
)

func mustPatient(t *testing.T, id string) Patient {
	t.Helper()
	p, err := NewPatient(gofakeit.Name(), id, "15/05/1990")
	require.NoError(t, err)
	return p
}

func mustDoctor(t *testing.T, id string, specs ...Specialty) *Doctor {
	t.Helper()
	d, err := NewDoctor(gofakeit.Name(), id)
	require.NoError(t, err)
	for _, s := range specs {
		require.NoError(t, d.AddSpecialty(s))
	}
	return d
}

// newTestClinic registers patient "1" and doctor "A" who attends
// Pediatrics on Mondays.
func newTestClinic(t *testing.T, opts ...Option) *Clinic {
	t.Helper()
	c := New(opts...)
	require.NoError(t, c.RegisterPatient(mustPatient(t, "1")))
	require.NoError(t, c.RegisterDoctor(mustDoctor(t, "A", mustSpecialty(t, "Pediatrics", "lunes"))))
	return c
}

func TestRegisterPatientRejectsDuplicates(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterPatient(mustPatient(t, "1")))

	err := c.RegisterPatient(mustPatient(t, "1"))
	assert.ErrorIs(t, err, ErrDuplicatePatient)
	assert.Len(t, c.Patients(), 1)
}

func TestRegisterPatientCreatesEmptyRecord(t *testing.T) {
	c := New()
	p := mustPatient(t, "1")
	require.NoError(t, c.RegisterPatient(p))

	rec, err := c.ClinicalRecord("1")
	require.NoError(t, err)
	assert.Equal(t, p, rec.Patient())
	assert.Empty(t, rec.Appointments())
	assert.Empty(t, rec.Prescriptions())
}

func TestRegisterDoctorRejectsDuplicates(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterDoctor(mustDoctor(t, "A")))

	err := c.RegisterDoctor(mustDoctor(t, "A"))
	assert.ErrorIs(t, err, ErrDuplicateDoctor)
	assert.Len(t, c.Doctors(), 1)
}

func TestRegisterRejectsZeroValues(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.RegisterPatient(Patient{}), ErrInvalidValue)
	assert.ErrorIs(t, c.RegisterDoctor(nil), ErrInvalidValue)
	assert.Empty(t, c.Patients())
	assert.Empty(t, c.Doctors())
}

func TestFindAndRequire(t *testing.T) {
	c := newTestClinic(t)

	d, err := c.FindDoctor("A")
	require.NoError(t, err)
	assert.Equal(t, "A", d.ID())

	_, err = c.FindDoctor("B")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
	_, err = c.FindPatient("2")
	assert.ErrorIs(t, err, ErrPatientNotFound)

	assert.NoError(t, c.RequirePatientExists("1"))
	assert.NoError(t, c.RequireDoctorExists("A"))
	assert.ErrorIs(t, c.RequirePatientExists("2"), ErrPatientNotFound)
	assert.ErrorIs(t, c.RequireDoctorExists("B"), ErrDoctorNotFound)
}

func TestFoundDoctorDoesNotAliasRegistry(t *testing.T) {
	c := newTestClinic(t)

	d, err := c.FindDoctor("A")
	require.NoError(t, err)
	require.NoError(t, d.AddSpecialty(mustSpecialty(t, "Cardiology", "martes")))

	_, err = c.BookAppointment("1", "A", "Cardiology", tuesday9am)
	assert.ErrorIs(t, err, ErrDoctorUnavailable)
}

func TestAddSpecialtyThroughClinic(t *testing.T) {
	c := newTestClinic(t)

	require.NoError(t, c.AddSpecialty("A", mustSpecialty(t, "Cardiology", "martes")))
	assert.ErrorIs(t, c.AddSpecialty("A", mustSpecialty(t, "Cardiology", "jueves")), ErrInvalidValue)
	assert.ErrorIs(t, c.AddSpecialty("B", mustSpecialty(t, "Cardiology", "jueves")), ErrDoctorNotFound)

	appt, err := c.BookAppointment("1", "A", "cardiology", tuesday9am)
	require.NoError(t, err)
	assert.Equal(t, "cardiology", appt.Specialty())
}

func TestBookAppointmentEndToEnd(t *testing.T) {
	issued := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	c := newTestClinic(t, WithClock(func() time.Time { return issued }))

	appt, err := c.BookAppointment("1", "A", "Pediatrics", monday9am)
	require.NoError(t, err)
	assert.Equal(t, "1", appt.Patient().ID())
	assert.Equal(t, "A", appt.DoctorID())
	assert.True(t, appt.Time().Equal(monday9am))

	rec, err := c.ClinicalRecord("1")
	require.NoError(t, err)
	assert.Len(t, rec.Appointments(), 1)
	assert.Len(t, rec.Prescriptions(), 0)

	rx, err := c.IssuePrescription("1", "A", []string{"Paracetamol"})
	require.NoError(t, err)
	assert.Equal(t, issued, rx.IssuedAt())

	rec, err = c.ClinicalRecord("1")
	require.NoError(t, err)
	assert.Len(t, rec.Appointments(), 1)
	assert.Len(t, rec.Prescriptions(), 1)
	assert.Equal(t, []string{"Paracetamol"}, rec.Prescriptions()[0].Medications())
	assert.Contains(t, rec.String(), "APPOINTMENTS (1)")
}

func TestBookAppointmentUnknownParties(t *testing.T) {
	c := newTestClinic(t)

	_, err := c.BookAppointment("2", "A", "Pediatrics", monday9am)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = c.BookAppointment("1", "B", "Pediatrics", monday9am)
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	// patient is checked before doctor
	_, err = c.BookAppointment("2", "B", "Pediatrics", monday9am)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	assert.Empty(t, c.Appointments())
}

func TestBookAppointmentDoctorUnavailable(t *testing.T) {
	c := newTestClinic(t)

	_, err := c.BookAppointment("1", "A", "Pediatrics", tuesday9am)
	assert.ErrorIs(t, err, ErrDoctorUnavailable)
	assert.Empty(t, c.Appointments())
}

func TestBookAppointmentSpecialtyMismatch(t *testing.T) {
	c := newTestClinic(t)

	_, err := c.BookAppointment("1", "A", "Cardiology", monday9am)
	require.ErrorIs(t, err, ErrInvalidSpecialty)

	var mismatch *SpecialtyMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "Pediatrics", mismatch.Offered)
	assert.Equal(t, "Cardiology", mismatch.Requested)
	assert.Equal(t, Monday, mismatch.Day)
	assert.Contains(t, err.Error(), "Pediatrics")

	assert.Empty(t, c.Appointments())
	rec, err := c.ClinicalRecord("1")
	require.NoError(t, err)
	assert.Empty(t, rec.Appointments())
}

func TestBookAppointmentSpecialtyIsCaseInsensitive(t *testing.T) {
	c := newTestClinic(t)

	_, err := c.BookAppointment("1", "A", "PEDIATRICS", monday9am)
	assert.NoError(t, err)
}

func TestBookAppointmentSlotTaken(t *testing.T) {
	c := newTestClinic(t)
	require.NoError(t, c.RegisterPatient(mustPatient(t, "2")))

	_, err := c.BookAppointment("1", "A", "Pediatrics", monday9am)
	require.NoError(t, err)

	_, err = c.BookAppointment("2", "A", "Pediatrics", monday9am)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, c.Appointments(), 1)

	// same instant expressed in another location is still the same slot
	_, err = c.BookAppointment("2", "A", "Pediatrics", monday9am.In(time.FixedZone("UTC+1", 3600)))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// no tolerance window: one minute later is free
	_, err = c.BookAppointment("2", "A", "Pediatrics", monday9am.Add(time.Minute))
	assert.NoError(t, err)
	assert.Len(t, c.Appointments(), 2)
}

func TestBookAppointmentSlotTakenCheckedBeforeSchedule(t *testing.T) {
	c := newTestClinic(t)

	_, err := c.BookAppointment("1", "A", "Pediatrics", monday9am)
	require.NoError(t, err)

	_, err = c.BookAppointment("1", "A", "Cardiology", monday9am)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestSameTimeWithDifferentDoctors(t *testing.T) {
	c := newTestClinic(t)
	require.NoError(t, c.RegisterDoctor(mustDoctor(t, "B", mustSpecialty(t, "Pediatrics", "lunes"))))

	_, err := c.BookAppointment("1", "A", "Pediatrics", monday9am)
	require.NoError(t, err)
	_, err = c.BookAppointment("1", "B", "Pediatrics", monday9am)
	require.NoError(t, err)
}

func TestIssuePrescriptionRequiresMedications(t *testing.T) {
	c := newTestClinic(t)

	_, err := c.IssuePrescription("1", "A", nil)
	assert.ErrorIs(t, err, ErrInvalidPrescription)
	_, err = c.IssuePrescription("1", "A", []string{})
	assert.ErrorIs(t, err, ErrInvalidPrescription)

	rec, err := c.ClinicalRecord("1")
	require.NoError(t, err)
	assert.Empty(t, rec.Prescriptions())
}

func TestIssuePrescriptionUnknownParties(t *testing.T) {
	c := newTestClinic(t)

	_, err := c.IssuePrescription("2", "A", []string{"Paracetamol"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
	_, err = c.IssuePrescription("1", "B", []string{"Paracetamol"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
	// existence is checked before the medication list
	_, err = c.IssuePrescription("2", "A", nil)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestClinicalRecordUnknownPatient(t *testing.T) {
	c := New()
	_, err := c.ClinicalRecord("1")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestClinicalRecordIsSnapshot(t *testing.T) {
	c := newTestClinic(t)

	before, err := c.ClinicalRecord("1")
	require.NoError(t, err)

	_, err = c.BookAppointment("1", "A", "Pediatrics", monday9am)
	require.NoError(t, err)

	assert.Empty(t, before.Appointments())
}

func TestListsKeepRegistrationOrder(t *testing.T) {
	c := New()
	ids := []string{"30", "10", "20"}
	for _, id := range ids {
		require.NoError(t, c.RegisterPatient(mustPatient(t, id)))
		require.NoError(t, c.RegisterDoctor(mustDoctor(t, "D"+id)))
	}

	patients := c.Patients()
	doctors := c.Doctors()
	for i, id := range ids {
		assert.Equal(t, id, patients[i].ID())
		assert.Equal(t, "D"+id, doctors[i].ID())
	}

	patients[0] = Patient{}
	assert.Equal(t, "30", c.Patients()[0].ID())
}

func TestAppointmentsMatchRecords(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterDoctor(mustDoctor(t, "A",
		mustSpecialty(t, "Pediatrics", "lunes", "miércoles"),
		mustSpecialty(t, "Cardiology", "viernes"),
	)))
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, c.RegisterPatient(mustPatient(t, id)))
	}

	bookings := []struct {
		patient   string
		specialty string
		at        time.Time
	}{
		{"1", "Pediatrics", monday9am},
		{"2", "Pediatrics", monday9am.Add(30 * time.Minute)},
		{"1", "Pediatrics", monday9am.AddDate(0, 0, 2)},
		{"3", "Cardiology", monday9am.AddDate(0, 0, 4)},
		{"2", "Cardiology", monday9am},  // rejected: slot taken
		{"3", "Pediatrics", tuesday9am}, // rejected: unavailable
	}
	for _, b := range bookings {
		_, _ = c.BookAppointment(b.patient, "A", b.specialty, b.at)
	}
	_, err := c.IssuePrescription("3", "A", []string{"Aspirina"})
	require.NoError(t, err)

	total := 0
	for _, p := range c.Patients() {
		rec, err := c.ClinicalRecord(p.ID())
		require.NoError(t, err)
		total += len(rec.Appointments())
	}
	assert.Equal(t, 4, len(c.Appointments()))
	assert.Equal(t, len(c.Appointments()), total)
}

func TestConcurrentBookingOfSameSlot(t *testing.T) {
	c := newTestClinic(t)
	const callers = 20
	for i := 0; i < callers; i++ {
		require.NoError(t, c.RegisterPatient(mustPatient(t, gofakeit.UUID())))
	}
	patients := c.Patients()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		taken   int
	)
	for _, p := range patients {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := c.BookAppointment(id, "A", "Pediatrics", monday9am)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, ErrSlotTaken):
				taken++
			}
		}(p.ID())
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, len(patients)-1, taken)
	assert.Len(t, c.Appointments(), 1)
}

func TestCode(t *testing.T) {
	assert.Equal(t, "ok", Code(nil))
	assert.Equal(t, "slot_taken", Code(ErrSlotTaken))
	assert.Equal(t, "invalid_specialty", Code(&SpecialtyMismatchError{Offered: "x"}))
	assert.Equal(t, "invalid_value", Code(invalidf("bad")))
	assert.Equal(t, "internal_error", Code(errors.New("boom")))
}
