package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pulse_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_webhook_events_total",
			Help: "Payment gateway webhook events by type and outcome",
		},
		[]string{"type", "outcome"},
	)

	ParticipationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_participations_total",
			Help: "Participation status transitions seen on the event bus",
		},
		[]string{"status"},
	)

	PaymentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pulse_payment_amounts",
			Help:    "Distribution of participation amounts",
			Buckets: prometheus.LinearBuckets(0, 25, 20),
		},
		[]string{"status"},
	)

	RemindersDispatchedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_reminders_dispatched_total",
			Help: "Scheduled event reminders dispatched",
		},
		[]string{"trigger"},
	)

	NotificationsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_notifications_created_total",
			Help: "User notifications created",
		},
		[]string{"type"},
	)

	DLQMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_dlq_messages_total",
			Help: "Messages moved to the dead letter queue",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			WebhookEventsTotal,
			ParticipationsTotal,
			PaymentAmounts,
			RemindersDispatchedTotal,
			NotificationsCreatedTotal,
			DLQMessagesTotal,
		)
	})
}
