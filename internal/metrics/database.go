package metrics

import (
	"database/sql"
	"strings"
	"time"
)

// poolWaits remembers the last cumulative wait figures reported by database/sql
type poolWaits struct {
	count    int64
	duration time.Duration
}

// UpdateDBStats mirrors the connection pool gauges and advances the wait counters.
// sql.DBStats wait figures are cumulative, so only the growth since the previous sample is added.
// A smaller figure than the last one means the pool was reopened and counts from zero again.
func (m *Metrics) UpdateDBStats(statsInterface interface{}) {
	m.safeExecute("UpdateDBStats", func() {
		stats, ok := statsInterface.(sql.DBStats)
		if !ok {
			return
		}
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))

		m.poolMu.Lock()
		prev := m.poolWaits
		m.poolWaits = poolWaits{count: stats.WaitCount, duration: stats.WaitDuration}
		m.poolMu.Unlock()

		if stats.WaitCount < prev.count || stats.WaitDuration < prev.duration {
			prev = poolWaits{}
		}
		if delta := stats.WaitCount - prev.count; delta > 0 {
			m.DBConnectionWaitTotal.Add(float64(delta))
		}
		if delta := stats.WaitDuration - prev.duration; delta > 0 {
			m.DBConnectionWaitDuration.Add(delta.Seconds())
		}
	})
}

// RecordDBQuery records the duration of one gorm operation against a table, counting failures
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		operation = strings.ToLower(operation)
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
		if err != nil {
			m.DBQueryErrors.WithLabelValues(operation, table).Inc()
		}
	})
}
