package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Service   ClinicService
	Logger    *zap.Logger
	Checks    map[string]HealthCheck
	RateLimit int // requests per minute per IP, 0 disables
	Env       string
	Version   string
}

func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(log))
	r.Use(middleware.Recoverer)

	health := NewHealthHandler(cfg.Checks, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
		}

		r.Post("/patients", createPatientHandler(cfg.Service))
		r.Get("/patients", listPatientsHandler(cfg.Service))
		r.Get("/patients/{id}", getPatientHandler(cfg.Service))
		r.Get("/patients/{id}/record", getClinicalRecordHandler(cfg.Service))

		r.Post("/doctors", createDoctorHandler(cfg.Service))
		r.Get("/doctors", listDoctorsHandler(cfg.Service))
		r.Get("/doctors/{id}", getDoctorHandler(cfg.Service))
		r.Post("/doctors/{id}/specialties", addSpecialtyHandler(cfg.Service))

		r.Post("/appointments", bookAppointmentHandler(cfg.Service))
		r.Get("/appointments", listAppointmentsHandler(cfg.Service))

		r.Post("/prescriptions", issuePrescriptionHandler(cfg.Service))
	})

	return r
}
