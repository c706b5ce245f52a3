package database

import (
	"context"
	"database/sql"
	"time"
	"urban_life/pkg/metrics"

	"go.uber.org/zap"
)

// StatsSource 连接池统计来源，*sql.DB 满足该接口
type StatsSource interface {
	Stats() sql.DBStats
}

// PoolMonitor 连接池监控器，周期性地把 sql.DBStats 写入 Prometheus
type PoolMonitor struct {
	db       StatsSource
	metrics  *metrics.MetricsCollector
	interval time.Duration
	log      *zap.Logger

	// 等待次数告警阈值，每个采样周期内新增等待超过该值时输出告警
	waitAlertThreshold int64
	lastWaitCount      int64
}

// NewPoolMonitor 创建连接池监控器
func NewPoolMonitor(db StatsSource, m *metrics.MetricsCollector, interval time.Duration, log *zap.Logger) *PoolMonitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &PoolMonitor{
		db:                 db,
		metrics:            m,
		interval:           interval,
		log:                log,
		waitAlertThreshold: 50,
	}
}

// Run 阻塞运行直到 ctx 结束
func (pm *PoolMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(pm.interval)
	defer ticker.Stop()

	pm.Collect()
	for {
		select {
		case <-ticker.C:
			pm.Collect()
		case <-ctx.Done():
			return
		}
	}
}

// Collect 采集一次
func (pm *PoolMonitor) Collect() {
	stats := pm.db.Stats()
	pm.metrics.UpdateDBConnections(stats.OpenConnections, stats.InUse, stats.Idle, stats.WaitCount)

	waited := stats.WaitCount - pm.lastWaitCount
	pm.lastWaitCount = stats.WaitCount
	if waited > pm.waitAlertThreshold {
		pm.log.Warn("database pool saturated",
			zap.Int64("waited", waited),
			zap.Duration("wait_duration", stats.WaitDuration),
			zap.Int("in_use", stats.InUse),
			zap.Int("max_open", stats.MaxOpenConnections),
		)
	}
}
