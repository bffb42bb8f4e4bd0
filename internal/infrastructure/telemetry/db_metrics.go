package telemetry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBMetrics records per-statement Prometheus metrics from GORM callbacks
// and exports the connection pool statistics.
type DBMetrics struct {
	queryTotal     *prometheus.CounterVec
	queryDuration  *prometheus.HistogramVec
	slowQueryTotal *prometheus.CounterVec

	slowThreshold time.Duration
	dbName        string
	logger        *zap.Logger
}

// NewDBMetrics creates the query instruments and registers them on reg
func NewDBMetrics(reg prometheus.Registerer, namespace, dbName string, slowThreshold time.Duration, logger *zap.Logger) (*DBMetrics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if slowThreshold <= 0 {
		slowThreshold = 200 * time.Millisecond
	}

	m := &DBMetrics{
		queryTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "queries_total",
			Help:      "Total number of SQL statements by operation, table and outcome",
		}, []string{"operation", "table", "status"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "SQL statement latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation", "table"}),
		slowQueryTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "slow_queries_total",
			Help:      "SQL statements slower than the configured threshold",
		}, []string{"operation", "table"}),
		slowThreshold: slowThreshold,
		dbName:        dbName,
		logger:        logger,
	}

	for _, c := range []prometheus.Collector{m.queryTotal, m.queryDuration, m.slowQueryTotal} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register db metric: %w", err)
		}
	}
	return m, nil
}

// Register installs the GORM callbacks and the pool stats collector
func (m *DBMetrics) Register(db *gorm.DB, reg prometheus.Registerer) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	if err := reg.Register(collectors.NewDBStatsCollector(sqlDB, m.dbName)); err != nil {
		return fmt.Errorf("register db stats collector: %w", err)
	}
	return registerAround(db, "metrics", markStart, m.observe)
}

func (m *DBMetrics) observe(db *gorm.DB) {
	elapsed, ok := elapsedSince(db)
	if !ok {
		return
	}
	operation := detectOperation(db.Statement.SQL.String())
	table := db.Statement.Table
	if table == "" {
		table = "unknown"
	}

	status := "ok"
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		status = "error"
	}

	m.queryTotal.WithLabelValues(operation, table, status).Inc()
	m.queryDuration.WithLabelValues(operation, table).Observe(elapsed.Seconds())
	if elapsed > m.slowThreshold {
		m.slowQueryTotal.WithLabelValues(operation, table).Inc()
		m.logger.Warn("Slow query",
			zap.String("operation", operation),
			zap.String("table", table),
			zap.Duration("elapsed", elapsed),
		)
	}
}

// detectOperation maps a statement to its leading SQL verb
func detectOperation(sql string) string {
	sql = strings.TrimSpace(sql)
	verb, _, _ := strings.Cut(sql, " ")
	switch v := strings.ToUpper(verb); v {
	case "SELECT", "INSERT", "UPDATE", "DELETE":
		return v
	case "":
		return "UNKNOWN"
	default:
		return "OTHER"
	}
}
