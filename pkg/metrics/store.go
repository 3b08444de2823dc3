package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/voguelabs/storefront-backend/pkg/enums"
)

// StoreMetrics counts store mutations and best-effort persistence failures.
type StoreMetrics struct {
	operations      *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operations_total",
		Help: "Store mutations by store and outcome.",
	}, []string{"store", "outcome"})
	persistFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_persist_failures_total",
		Help: "Durable writes that failed and were swallowed.",
	}, []string{"store"})
	reg.MustRegister(operations, persistFailures)
	return &StoreMetrics{
		operations:      operations,
		persistFailures: persistFailures,
	}
}

// IncOperation records a completed mutation for the named store.
func (m *StoreMetrics) IncOperation(store string, outcome enums.StoreOutcome) {
	if m == nil || m.operations == nil {
		return
	}
	m.operations.WithLabelValues(normalizeLabel(store), outcome.String()).Inc()
}

// IncPersistFailure records a swallowed durable-write failure.
func (m *StoreMetrics) IncPersistFailure(store string) {
	if m == nil || m.persistFailures == nil {
		return
	}
	m.persistFailures.WithLabelValues(normalizeLabel(store)).Inc()
}

func normalizeLabel(store string) string {
	if store == "" {
		return "unknown"
	}
	return store
}
