package metrics

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpdateDBStats(t *testing.T) {
	t.Run("성공: pool gauges mirror the latest sample", func(t *testing.T) {
		m := getTestMetrics()

		m.UpdateDBStats(sql.DBStats{MaxOpenConnections: 25, OpenConnections: 7, InUse: 3, Idle: 4})

		assert.Equal(t, 25.0, getGaugeValue(t, m.DBConnectionsMax))
		assert.Equal(t, 7.0, getGaugeValue(t, m.DBConnectionsOpen))
		assert.Equal(t, 3.0, getGaugeValue(t, m.DBConnectionsInUse))
		assert.Equal(t, 4.0, getGaugeValue(t, m.DBConnectionsIdle))
	})

	t.Run("성공: unchanged cumulative waits add nothing", func(t *testing.T) {
		m := getTestMetrics()

		for i := 0; i < 3; i++ {
			m.UpdateDBStats(sql.DBStats{WaitCount: 5, WaitDuration: 2 * time.Second})
		}

		assert.Equal(t, 5.0, getCounterValue(t, m.DBConnectionWaitTotal))
		assert.InDelta(t, 2.0, getCounterValue(t, m.DBConnectionWaitDuration), 1e-9)
	})

	t.Run("성공: only the growth between samples is added", func(t *testing.T) {
		m := getTestMetrics()

		m.UpdateDBStats(sql.DBStats{WaitCount: 5, WaitDuration: time.Second})
		m.UpdateDBStats(sql.DBStats{WaitCount: 8, WaitDuration: 1500 * time.Millisecond})

		assert.Equal(t, 8.0, getCounterValue(t, m.DBConnectionWaitTotal))
		assert.InDelta(t, 1.5, getCounterValue(t, m.DBConnectionWaitDuration), 1e-9)
	})

	t.Run("성공: reopened pool counts from zero again", func(t *testing.T) {
		m := getTestMetrics()

		m.UpdateDBStats(sql.DBStats{WaitCount: 10, WaitDuration: 4 * time.Second})
		m.UpdateDBStats(sql.DBStats{WaitCount: 2, WaitDuration: time.Second})

		assert.Equal(t, 12.0, getCounterValue(t, m.DBConnectionWaitTotal))
		assert.InDelta(t, 5.0, getCounterValue(t, m.DBConnectionWaitDuration), 1e-9)
	})
}

func TestRecordDBQuery(t *testing.T) {
	m := getTestMetrics()

	m.RecordDBQuery("SELECT", "product_configs", time.Millisecond, nil)
	m.RecordDBQuery("select", "product_configs", time.Millisecond, errTest)

	assert.Equal(t, 1.0, getCounterValue(t, m.DBQueryErrors.WithLabelValues("select", "product_configs")))
}

func TestStatusClass(t *testing.T) {
	cases := map[int]string{200: "2xx", 204: "2xx", 301: "3xx", 404: "4xx", 503: "5xx", 0: "unknown", 700: "unknown"}
	for code, want := range cases {
		assert.Equal(t, want, statusClass(code), "code %d", code)
	}
}
