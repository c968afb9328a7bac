// Package metrics exposes Prometheus collectors for the clinic service:
//   - clinic_operations_total: counter of clinic operations by name and result code
//   - clinic_appointments_booked_total: counter of booked appointments by weekday
//   - http_request_total / http_request_duration_seconds: HTTP traffic
//
// Collectors are registered with the default registry on package init.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ClinicOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_operations_total",
			Help: "Clinic operations by name and result",
		},
		[]string{"operation", "result"},
	)

	AppointmentsBooked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_appointments_booked_total",
			Help: "Booked appointments by weekday",
		},
		[]string{"weekday"},
	)

	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(ClinicOperations)
	prometheus.MustRegister(AppointmentsBooked)
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
}
