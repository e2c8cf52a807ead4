package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the roster service.
type MetricsRegistry struct {
	// HTTP metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Seating / roster metrics
	RostersGeneratedTotal    prometheus.CounterVec
	SeatsAssignedTotal       prometheus.Counter
	PassengersUnseatedTotal  prometheus.Counter
	SeatEditsTotal           prometheus.Counter
	SeatEditRejectionsTotal  prometheus.CounterVec
	RosterGenerationDuration prometheus.Histogram
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frms_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "frms_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "frms_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		RostersGeneratedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frms_rosters_generated_total",
				Help: "Roster snapshots generated, by flight number",
			},
			[]string{"flight_no"},
		),
		SeatsAssignedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "frms_seats_assigned_total",
				Help: "Seats handed out by the assignment engine",
			},
		),
		PassengersUnseatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "frms_passengers_unseated_total",
				Help: "Passengers left without a seat after an assignment run (cabin full for their class)",
			},
		),
		SeatEditsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "frms_seat_edits_total",
				Help: "Manual seat edits applied to roster snapshots",
			},
		),
		SeatEditRejectionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frms_seat_edit_rejections_total",
				Help: "Manual seat edits rejected, by rejection reason",
			},
			[]string{"reason"},
		),
		RosterGenerationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "frms_roster_generation_duration_seconds",
				Help:    "Wall time of one roster generation including persistence",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
		),
	}
}
