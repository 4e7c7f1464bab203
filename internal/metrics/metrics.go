// Package metrics exposes billing counters on a dedicated Prometheus registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	MetricUtilitiesCreatedTotal  = "rentledger_utilities_created_total"
	MetricUtilityRejectionsTotal = "rentledger_utility_rejections_total"
	MetricOpeningReadingsTotal   = "rentledger_opening_readings_total"
	MetricAuthorizationDenied    = "rentledger_authorization_denied_total"
	MetricOwnershipCacheTotal    = "rentledger_ownership_cache_lookups_total"
)

type Metrics struct {
	registry *prometheus.Registry

	utilitiesCreated    prometheus.Counter
	utilityRejections   *prometheus.CounterVec
	openingReadings     *prometheus.CounterVec
	authorizationDenied *prometheus.CounterVec
	ownershipCache      *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		utilitiesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricUtilitiesCreatedTotal,
			Help: "Utility records created",
		}),
		utilityRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricUtilityRejectionsTotal,
			Help: "Utility creations rejected, by reason",
		}, []string{"reason"}),
		openingReadings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricOpeningReadingsTotal,
			Help: "Opening meter readings resolved, by source",
		}, []string{"source"}),
		authorizationDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricAuthorizationDenied,
			Help: "Ownership or role checks that denied access, by resource kind",
		}, []string{"kind"}),
		ownershipCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricOwnershipCacheTotal,
			Help: "Ownership hop cache lookups, by hop and result",
		}, []string{"hop", "result"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.utilitiesCreated,
		m.utilityRejections,
		m.openingReadings,
		m.authorizationDenied,
		m.ownershipCache,
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// All recorders accept a nil receiver so components can run without metrics.

func (m *Metrics) UtilityCreated() {
	if m == nil {
		return
	}
	m.utilitiesCreated.Inc()
}

func (m *Metrics) UtilityRejected(reason string) {
	if m == nil {
		return
	}
	m.utilityRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) OpeningReading(source string) {
	if m == nil {
		return
	}
	m.openingReadings.WithLabelValues(source).Inc()
}

func (m *Metrics) AuthorizationDenied(kind string) {
	if m == nil {
		return
	}
	m.authorizationDenied.WithLabelValues(kind).Inc()
}

func (m *Metrics) OwnershipCache(hop string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.ownershipCache.WithLabelValues(hop, result).Inc()
}
