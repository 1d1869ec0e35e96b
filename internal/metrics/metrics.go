package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tourism_booking",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status class.",
		},
		[]string{"method", "status"},
	)

	bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tourism_booking",
			Name:      "bookings_total",
			Help:      "Booking submissions by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	openForms = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "tourism_booking",
			Name:      "open_booking_forms",
			Help:      "Currently open booking form sessions.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookings, openForms)
	})
}

// IncHTTP counts one handled request.
func IncHTTP(method, status string) {
	httpRequests.WithLabelValues(method, status).Inc()
}

// IncBooking counts one submission attempt of the given kind.
func IncBooking(kind string, ok bool) {
	outcome := "failed"
	if ok {
		outcome = "accepted"
	}
	bookings.WithLabelValues(kind, outcome).Inc()
}

// SetOpenForms tracks how many form sessions are currently open.
func SetOpenForms(n int) {
	openForms.Set(float64(n))
}
