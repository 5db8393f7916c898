package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsCreated     prometheus.Counter
	BookingConflicts    prometheus.Counter
}

// IncBookingCreated увеличивает счетчик созданных заказов
func (m *Metrics) IncBookingCreated() {
	m.BookingsCreated.Inc()
}

// IncBookingConflict увеличивает счетчик конфликтов расписания
func (m *Metrics) IncBookingConflict() {
	m.BookingConflicts.Inc()
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: labels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		BookingsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name:        "bookings_created_total",
				Help:        "Total number of successfully created bookings",
				ConstLabels: labels,
			},
		),
		BookingConflicts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name:        "booking_conflicts_total",
				Help:        "Total number of booking attempts rejected due to scheduling conflicts",
				ConstLabels: labels,
			},
		),
	}
}
