package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics collects per-operation counters and latency histograms,
// labeled by contract, provider, operation and status. A nil *Metrics is
// valid and records nothing, so consumers stay usable without a
// registry.
type Metrics struct {
	operationsTotal  *prometheus.CounterVec
	operationSeconds *prometheus.HistogramVec
}

// NewMetrics creates the operation metrics and registers them, together
// with the standard Go runtime collectors, on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solidlab_operations_total",
			Help: "Total contract operations invoked through bound providers.",
		}, []string{"contract", "provider", "operation", "status"}),
		operationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "solidlab_operation_duration_seconds",
			Help:    "Contract operation latency.",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"contract", "provider", "operation"}),
	}

	reg.MustRegister(
		m.operationsTotal,
		m.operationSeconds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveOperation records one contract operation invocation.
func (m *Metrics) ObserveOperation(contract, provider, operation, status string, seconds float64) {
	if m == nil {
		return
	}

	m.operationsTotal.WithLabelValues(contract, provider, operation, status).Inc()
	m.operationSeconds.WithLabelValues(contract, provider, operation).Observe(seconds)
}
