package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-коллекторов сервиса.
// Все метрики имеют label service, чтобы несколько инстансов могли
// писать в общий Pushgateway/Prometheus без коллизий имён.
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbPoolOpenConns  *prometheus.GaugeVec
	dbPoolInUseConns *prometheus.GaugeVec
	dbPoolIdleConns  *prometheus.GaugeVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	return &Metrics{
		service: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Count of HTTP requests by method, path and status code.",
			},
			[]string{"service", "method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),

		dbQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_queries_total",
				Help: "Count of database queries by operation and status.",
			},
			[]string{"service", "operation", "status"},
		),
		dbQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"service", "operation"},
		),

		dbPoolOpenConns: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_open_connections",
				Help: "Number of open connections in the pool.",
			},
			[]string{"service"},
		),
		dbPoolInUseConns: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_in_use_connections",
				Help: "Number of connections currently in use.",
			},
			[]string{"service"},
		),
		dbPoolIdleConns: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_pool_idle_connections",
				Help: "Number of idle connections in the pool.",
			},
			[]string{"service"},
		),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.service, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation, status string, duration time.Duration) {
	m.dbQueriesTotal.WithLabelValues(m.service, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	m.dbPoolOpenConns.WithLabelValues(m.service).Set(float64(open))
	m.dbPoolInUseConns.WithLabelValues(m.service).Set(float64(inUse))
	m.dbPoolIdleConns.WithLabelValues(m.service).Set(float64(idle))
}
