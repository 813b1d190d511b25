// Package metrics exposes Prometheus counters for record creation and lookup.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels.
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultError    = "error"
	ResultFound    = "found"
	ResultNotFound = "not_found"
)

// Recorder owns a private registry so several instances (tests, CLI) never
// collide on the global one.
type Recorder struct {
	registry       *prometheus.Registry
	recordsCreated prometheus.Counter
	createRequests *prometheus.CounterVec
	lookups        *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		recordsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "liftlog",
			Name:      "records_created_total",
			Help:      "Number of component lift records persisted.",
		}),
		createRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "liftlog",
			Name:      "create_requests_total",
			Help:      "Creation requests by result.",
		}, []string{"result"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "liftlog",
			Name:      "lookups_total",
			Help:      "Record lookups by result.",
		}, []string{"result"}),
	}
	r.registry.MustRegister(r.recordsCreated, r.createRequests, r.lookups)
	return r
}

// ObserveCreate counts one creation request and the records it wrote.
func (r *Recorder) ObserveCreate(result string, records int) {
	r.createRequests.WithLabelValues(result).Inc()
	if records > 0 {
		r.recordsCreated.Add(float64(records))
	}
}

// ObserveLookup counts one lookup.
func (r *Recorder) ObserveLookup(result string) {
	r.lookups.WithLabelValues(result).Inc()
}

// Registry is exposed for tests and for embedding into another handler.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
