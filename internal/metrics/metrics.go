package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// EventsProcessed counts events a handler acknowledged, by event type.
	EventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookhive",
		Subsystem: "consumer",
		Name:      "events_processed_total",
		Help:      "Events successfully handled and acknowledged.",
	}, []string{"event_type"})

	// EventsDropped counts events acknowledged without handling, by reason
	// (bad_payload, unknown_type).
	EventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookhive",
		Subsystem: "consumer",
		Name:      "events_dropped_total",
		Help:      "Malformed or unroutable events dropped from the queue.",
	}, []string{"reason"})

	// EventsRequeued counts first-attempt handler failures sent back for retry.
	EventsRequeued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bookhive",
		Subsystem: "consumer",
		Name:      "events_requeued_total",
		Help:      "Events requeued after a first handler failure.",
	})

	// EventsDeadLettered counts events routed to the dead-letter queue after
	// the retry also failed.
	EventsDeadLettered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bookhive",
		Subsystem: "consumer",
		Name:      "events_deadlettered_total",
		Help:      "Events rejected to the dead-letter queue.",
	})

	// EmailsSent counts delivered notification emails.
	EmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bookhive",
		Subsystem: "email",
		Name:      "emails_sent_total",
		Help:      "Notification emails handed to the mailer.",
	})
)

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
