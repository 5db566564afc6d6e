package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "config_store"

// Outcome labels for operation counters
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds Prometheus metrics for configuration store operations.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	operations          *prometheus.CounterVec // By scope, operation and outcome
	auditWriteFailures  *prometheus.CounterVec // By scope
	changeEventFailures prometheus.Counter
}

// New creates and registers configuration store metrics on a fresh registry
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settings",
			Name:      "operations_total",
			Help:      "Total number of settings operations",
		}, []string{"scope", "operation", "outcome"}),

		auditWriteFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "write_failures_total",
			Help:      "Total number of audit records that could not be written",
		}, []string{"scope"}),

		changeEventFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "publish_failures_total",
			Help:      "Total number of change events that could not be published",
		}),
	}

	registered := []prometheus.Collector{
		m.operations,
		m.auditWriteFailures,
		m.changeEventFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range registered {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Operation counts a settings operation by outcome
func (m *Metrics) Operation(scope, operation string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.operations.WithLabelValues(scope, operation, outcome).Inc()
}

// AuditWriteFailed counts an audit record that was dropped
func (m *Metrics) AuditWriteFailed(scope string) {
	if m == nil {
		return
	}
	m.auditWriteFailures.WithLabelValues(scope).Inc()
}

// ChangeEventFailed counts a change event that was not published
func (m *Metrics) ChangeEventFailed() {
	if m == nil {
		return
	}
	m.changeEventFailures.Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
