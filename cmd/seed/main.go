package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/hackgods/clinic-scheduling/internal/api"
	"github.com/hackgods/clinic-scheduling/internal/clinic"
	"github.com/hackgods/clinic-scheduling/internal/logger"
)

var specialties = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

type seeder struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// seed registers fake doctors and patients through a running api-server
// and books one appointment per patient.
func main() {
	zlog, err := logger.New("dev", "info")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zlog.Sync() }()

	s := &seeder{
		baseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		client:  &http.Client{Timeout: 5 * time.Second},
		log:     zlog,
	}
	doctorCount := getInt("SEED_DOCTORS", 10)
	patientCount := getInt("SEED_PATIENTS", 100)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	doctors, err := s.seedDoctors(ctx, doctorCount)
	if err != nil {
		zlog.Fatal("seed doctors", zap.Error(err))
	}
	patients, err := s.seedPatients(ctx, patientCount)
	if err != nil {
		zlog.Fatal("seed patients", zap.Error(err))
	}
	booked := s.seedAppointments(ctx, patients, doctors)

	zlog.Info("seed complete",
		zap.Int("doctors", len(doctors)),
		zap.Int("patients", len(patients)),
		zap.Int("appointments", booked),
	)
}

func (s *seeder) seedDoctors(ctx context.Context, count int) ([]api.CreateDoctorRequest, error) {
	s.log.Info("seeding doctors", zap.Int("count", count))

	out := make([]api.CreateDoctorRequest, 0, count)
	for i := 0; i < count; i++ {
		req := fakeDoctor(i)
		if err := s.post(ctx, "/doctors", req); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

// fakeDoctor splits the week between two different specialties so that
// each weekday maps to at most one of them.
func fakeDoctor(i int) api.CreateDoctorRequest {
	first := specialties[gofakeit.Number(0, len(specialties)-1)]
	second := specialties[gofakeit.Number(0, len(specialties)-1)]
	for second == first {
		second = specialties[gofakeit.Number(0, len(specialties)-1)]
	}

	var firstDays, secondDays []string
	for _, d := range clinic.Week[:5] {
		if gofakeit.Bool() {
			firstDays = append(firstDays, d.String())
		} else {
			secondDays = append(secondDays, d.String())
		}
	}
	if len(firstDays) == 0 {
		firstDays = []string{clinic.Saturday.String()}
	}

	req := api.CreateDoctorRequest{
		Name:        gofakeit.Name(),
		LicenseID:   fmt.Sprintf("MAT%04d", i+1),
		Specialties: []api.SpecialtyRequest{{Name: first, Days: firstDays}},
	}
	if len(secondDays) > 0 {
		req.Specialties = append(req.Specialties, api.SpecialtyRequest{Name: second, Days: secondDays})
	}
	return req
}

func (s *seeder) seedPatients(ctx context.Context, count int) ([]api.CreatePatientRequest, error) {
	s.log.Info("seeding patients", zap.Int("count", count))

	start := time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Now().AddDate(-1, 0, 0)

	out := make([]api.CreatePatientRequest, 0, count)
	for i := 0; i < count; i++ {
		req := api.CreatePatientRequest{
			Name:      gofakeit.Name(),
			ID:        strconv.Itoa(20000000 + i),
			BirthDate: gofakeit.DateRange(start, end).Format("02/01/2006"),
		}
		if err := s.post(ctx, "/patients", req); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

// seedAppointments books each patient with a random doctor on the next
// day that doctor attends. Rejections are logged and skipped.
func (s *seeder) seedAppointments(ctx context.Context, patients []api.CreatePatientRequest, doctors []api.CreateDoctorRequest) int {
	if len(doctors) == 0 {
		return 0
	}

	booked := 0
	for _, p := range patients {
		d := doctors[gofakeit.Number(0, len(doctors)-1)]
		spec := d.Specialties[0]

		at := nextDay(time.Now(), spec.Days[0])
		at = time.Date(at.Year(), at.Month(), at.Day(), gofakeit.Number(8, 17), 15*gofakeit.Number(0, 3), 0, 0, time.Local)

		req := api.BookAppointmentRequest{
			PatientID: p.ID,
			DoctorID:  d.LicenseID,
			Specialty: spec.Name,
			Date:      at.Format("02/01/2006"),
			Time:      at.Format("15:04"),
		}
		if err := s.post(ctx, "/appointments", req); err != nil {
			s.log.Warn("appointment rejected", zap.String("patient_id", p.ID), zap.Error(err))
			continue
		}
		booked++
	}
	return booked
}

func nextDay(from time.Time, day string) time.Time {
	for i := 1; i <= 7; i++ {
		t := from.AddDate(0, 0, i)
		if clinic.WeekdayOf(t).String() == day {
			return t
		}
	}
	return from
}

func (s *seeder) post(ctx context.Context, path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s body: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("post %s: status %d: %s", path, resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v >= 0 {
		return v
	}
	return def
}
