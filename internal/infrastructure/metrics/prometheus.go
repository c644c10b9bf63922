// Package metrics exposes the service's prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	BookingsCreated  prometheus.Counter
	BookingsDeleted  prometheus.Counter
	TicketsExtracted prometheus.Counter
	ExtractionTime   prometheus.Histogram
	AlertsLogged     *prometheus.CounterVec
	ErrorsCount      *prometheus.CounterVec
}

// New creates prometheus metrics registered on the default registry.
func New(namespace string) *Metrics {
	return NewWith(namespace, prometheus.DefaultRegisterer)
}

// NewWith creates prometheus metrics on a custom registerer. Tests pass a
// fresh registry so parallel test packages do not collide.
func NewWith(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "The total number of bookings created",
		}),
		BookingsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_deleted_total",
			Help:      "The total number of bookings deleted",
		}),
		TicketsExtracted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_extracted_total",
			Help:      "The total number of ticket files successfully extracted",
		}),
		ExtractionTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ticket_extraction_time_seconds",
			Help:      "Time taken to extract a scanned ticket",
			Buckets:   prometheus.DefBuckets,
		}),
		AlertsLogged: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_logged_total",
			Help:      "The total number of departure alerts recorded",
		}, []string{"urgency"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
