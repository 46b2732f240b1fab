package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "service_rental",
			Name:      "bookings_created_total",
			Help:      "Count of booking requests accepted into WAITING.",
		},
	)

	ownerDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "service_rental",
			Name:      "owner_decisions_total",
			Help:      "Count of owner decisions over bookings by outcome.",
		},
		[]string{"outcome"},
	)

	commentsAdded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "service_rental",
			Name:      "comments_added_total",
			Help:      "Count of comments left by renters.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, ownerDecisions, commentsAdded)
	})
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncOwnerDecision(outcome string) {
	ownerDecisions.WithLabelValues(outcome).Inc()
}

func IncCommentAdded() {
	commentsAdded.Inc()
}
