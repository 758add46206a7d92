// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsAcceptedTotal counts order operations that completed successfully.
	OperationsAcceptedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "atelier_order_operations_accepted_total",
		Help: "Total number of order operations that completed successfully.",
	},
		[]string{"operation"},
	)

	// OperationsRejectedTotal counts order operations refused by domain rules
	// or input validation, partitioned by the rejection reason.
	OperationsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "atelier_order_operations_rejected_total",
		Help: "Total number of order operations rejected, by reason.",
	},
		[]string{"operation", "reason"},
	)

	// EventsPublishFailedTotal counts order change events that could not be
	// delivered to the broker.
	EventsPublishFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atelier_order_events_publish_failed_total",
		Help: "Total number of order change events that failed to publish.",
	})
)
