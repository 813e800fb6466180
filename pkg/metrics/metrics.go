package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор метрик сервиса
// Все методы безопасны для nil-приемника: если метрики выключены, вызовы игнорируются
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	clinicAPIRequestsTotal   *prometheus.CounterVec
	clinicAPIRequestDuration *prometheus.HistogramVec

	slotGenerationDuration prometheus.Histogram
	slotWindowBuckets      prometheus.Histogram
	slotWindowTruncated    prometheus.Counter

	dbQueryDuration    *prometheus.HistogramVec
	dbOpenConnections  prometheus.Gauge
	dbInUseConnections prometheus.Gauge
	dbIdleConnections  prometheus.Gauge
	dbWaitCount        prometheus.Gauge

	cacheRequestsTotal *prometheus.CounterVec
}

// New создает коллектор и регистрирует его в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает коллектор и регистрирует его в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by route, method and status",
			ConstLabels: labels,
		}, []string{"route", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"route", "method"}),
		clinicAPIRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "clinic_api_requests_total",
			Help:        "Calls to the remote clinic API by operation and outcome",
			ConstLabels: labels,
		}, []string{"operation", "outcome"}),
		clinicAPIRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "clinic_api_request_duration_seconds",
			Help:        "Latency of remote clinic API calls",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		slotGenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "slot_generation_duration_seconds",
			Help:        "Time spent computing a slot window",
			ConstLabels: labels,
			Buckets:     []float64{.0001, .0005, .001, .005, .01, .05},
		}),
		slotWindowBuckets: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "slot_window_buckets",
			Help:        "Number of non-empty date buckets in a generated window",
			ConstLabels: labels,
			Buckets:     []float64{0, 1, 3, 7, 14, 30, 60},
		}),
		slotWindowTruncated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "slot_window_truncated_total",
			Help:        "Windows cut short by the look-ahead horizon cap",
			ConstLabels: labels,
		}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "status"}),
		dbOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open database connections",
			ConstLabels: labels,
		}),
		dbInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Database connections in use",
			ConstLabels: labels,
		}),
		dbIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle database connections",
			ConstLabels: labels,
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
		cacheRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_requests_total",
			Help:        "Redis cache lookups by cache name and result",
			ConstLabels: labels,
		}, []string{"cache", "result"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.clinicAPIRequestsTotal,
		m.clinicAPIRequestDuration,
		m.slotGenerationDuration,
		m.slotWindowBuckets,
		m.slotWindowTruncated,
		m.dbQueryDuration,
		m.dbOpenConnections,
		m.dbInUseConnections,
		m.dbIdleConnections,
		m.dbWaitCount,
		m.cacheRequestsTotal,
	)

	return m
}

func (m *Metrics) ObserveHTTPRequest(route, method, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(route, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

func (m *Metrics) ObserveClinicAPICall(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.clinicAPIRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.clinicAPIRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveSlotWindow doctorID в метки не попадает
func (m *Metrics) ObserveSlotWindow(_ string, buckets int, truncated bool, d time.Duration) {
	if m == nil {
		return
	}
	m.slotGenerationDuration.Observe(d.Seconds())
	m.slotWindowBuckets.Observe(float64(buckets))
	if truncated {
		m.slotWindowTruncated.Inc()
	}
}

func (m *Metrics) ObserveDBQuery(operation, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(d.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(open))
	m.dbInUseConnections.Set(float64(inUse))
	m.dbIdleConnections.Set(float64(idle))
	m.dbWaitCount.Set(float64(waitCount))
}

func (m *Metrics) ObserveCacheLookup(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheRequestsTotal.WithLabelValues(cache, result).Inc()
}
