package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector 指标收集器
type MetricsCollector struct {
	// HTTP 指标
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// 数据库连接池指标
	dbConnectionsOpen  prometheus.Gauge
	dbConnectionsInUse prometheus.Gauge
	dbConnectionsIdle  prometheus.Gauge
	dbWaitCount        prometheus.Gauge

	// 统一订单指标
	ordersCreatedTotal   *prometheus.CounterVec
	ordersPaidTotal      *prometheus.CounterVec
	ordersCancelledTotal *prometheus.CounterVec
	ordersDeletedTotal   *prometheus.CounterVec
	moduleSyncFailures   *prometheus.CounterVec
}

// NewMetricsCollector 创建指标收集器，reg 为 nil 时使用默认注册表
func NewMetricsCollector(reg prometheus.Registerer) *MetricsCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &MetricsCollector{
		httpRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		httpRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		dbConnectionsOpen: f.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of established database connections",
		}),
		dbConnectionsInUse: f.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of database connections currently in use",
		}),
		dbConnectionsIdle: f.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		}),
		dbWaitCount: f.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_wait_count",
			Help: "Total number of connections waited for",
		}),

		ordersCreatedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unified_orders_created_total",
				Help: "Unified orders created",
			},
			[]string{"order_type"},
		),
		ordersPaidTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unified_orders_paid_total",
				Help: "Unified orders moved to PAID",
			},
			[]string{"order_type", "payment_method"},
		),
		ordersCancelledTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unified_orders_cancelled_total",
				Help: "Unified orders moved to CANCELLED",
			},
			[]string{"order_type"},
		),
		ordersDeletedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unified_orders_deleted_total",
				Help: "Unified orders removed by their owner",
			},
			[]string{"order_type"},
		),
		moduleSyncFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unified_order_module_sync_failures_total",
				Help: "Failed propagations of wrapper status to the module order",
			},
			[]string{"order_type", "action"},
		),
	}
}

// RecordHTTPRequest 记录 HTTP 请求
func (m *MetricsCollector) RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// UpdateDBConnections 更新连接池状态
func (m *MetricsCollector) UpdateDBConnections(open, inUse, idle int, waitCount int64) {
	m.dbConnectionsOpen.Set(float64(open))
	m.dbConnectionsInUse.Set(float64(inUse))
	m.dbConnectionsIdle.Set(float64(idle))
	m.dbWaitCount.Set(float64(waitCount))
}

func (m *MetricsCollector) OrderCreated(orderType string) {
	m.ordersCreatedTotal.WithLabelValues(orderType).Inc()
}

func (m *MetricsCollector) OrderPaid(orderType, paymentMethod string) {
	m.ordersPaidTotal.WithLabelValues(orderType, paymentMethod).Inc()
}

func (m *MetricsCollector) OrderCancelled(orderType string) {
	m.ordersCancelledTotal.WithLabelValues(orderType).Inc()
}

func (m *MetricsCollector) OrderDeleted(orderType string) {
	m.ordersDeletedTotal.WithLabelValues(orderType).Inc()
}

// ModuleSyncFailed 记录模块订单同步失败
func (m *MetricsCollector) ModuleSyncFailed(orderType, action string) {
	m.moduleSyncFailures.WithLabelValues(orderType, action).Inc()
}
