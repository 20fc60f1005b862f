package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics concentra os coletores Prometheus do userhub.
// Os métodos aceitam receiver nil, o que permite omitir métricas em testes.
type Metrics struct {
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	ResourcesCreated *prometheus.CounterVec
	ResourcesDeleted *prometheus.CounterVec
	CacheLookups     *prometheus.CounterVec
}

// New registra os coletores no registerer informado (um registry por processo ou por teste).
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "userhub_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "userhub_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		ResourcesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "userhub_resources_created_total",
			Help: "Total number of resources created by kind",
		}, []string{"resource"}),
		ResourcesDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "userhub_resources_deleted_total",
			Help: "Total number of resources deleted by kind",
		}, []string{"resource"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "userhub_cache_lookups_total",
			Help: "Cache-aside lookups by resource and result (hit, miss, error)",
		}, []string{"resource", "result"}),
	}
}

// ObserveHTTP registra uma requisição concluída.
func (m *Metrics) ObserveHTTP(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// IncrementCreated registra a criação de um recurso (user, car, house, passport).
func (m *Metrics) IncrementCreated(resource string) {
	if m == nil {
		return
	}
	m.ResourcesCreated.WithLabelValues(resource).Inc()
}

// IncrementDeleted registra a remoção de um recurso.
func (m *Metrics) IncrementDeleted(resource string) {
	if m == nil {
		return
	}
	m.ResourcesDeleted.WithLabelValues(resource).Inc()
}

// ObserveCacheLookup registra o resultado de uma leitura no cache.
func (m *Metrics) ObserveCacheLookup(resource, result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(resource, result).Inc()
}
