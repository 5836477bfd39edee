package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	DutiesAssigned   prometheus.Counter
	Retirements      prometheus.Counter
	PeopleRegistered prometheus.Counter
	ProcessingTime   prometheus.Histogram
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DutiesAssigned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duties_assigned_total",
			Help:      "The total number of astronaut duties assigned",
		}),
		Retirements: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retirements_total",
			Help:      "The total number of retirement transitions",
		}),
		PeopleRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "people_registered_total",
			Help:      "The total number of registered people",
		}),
		ProcessingTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "duty_processing_time_seconds",
			Help:      "Time taken to process a duty submission",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation", "kind"}),
	}
}

// ObserveError increments the error counter for an operation
func (m *Metrics) ObserveError(operation, kind string) {
	if m == nil {
		return
	}
	m.ErrorsCount.WithLabelValues(operation, kind).Inc()
}
