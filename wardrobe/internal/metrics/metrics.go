package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wardrobe"

type Metrics struct {
	LoansCreated      prometheus.Counter
	ReturnsRegistered *prometheus.CounterVec
	OperationFailures *prometheus.CounterVec
	UnitsReserved     prometheus.Counter
	UnitsReleased     prometheus.Counter
	EventsPublished   *prometheus.CounterVec
}

// New registers the service collectors on reg. A nil reg keeps them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LoansCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loans_created_total",
			Help:      "Loans committed.",
		}),
		ReturnsRegistered: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "returns_registered_total",
			Help:      "Return registrations committed, by resulting loan status.",
		}, []string{"status"}),
		OperationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Rolled back loan operations.",
		}, []string{"operation", "reason"}),
		UnitsReserved: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_reserved_total",
			Help:      "Wardrobe units taken out of stock.",
		}),
		UnitsReleased: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_released_total",
			Help:      "Wardrobe units put back into stock.",
		}),
		EventsPublished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loan_events_published_total",
			Help:      "Loan events handed to the publisher, by result.",
		}, []string{"result"}),
	}
}
