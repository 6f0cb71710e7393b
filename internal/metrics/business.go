package metrics

import (
	"time"
)

// Resolution sources
const (
	SourceCache    = "cache"
	SourceComputed = "computed"
)

// IncrementProductConfigSaved increments the product configuration write counter
func (m *Metrics) IncrementProductConfigSaved() {
	m.safeExecute("IncrementProductConfigSaved", func() {
		m.ProductConfigSavedTotal.Inc()
	})
}

// SetProductConfigsTotal sets total product configurations gauge
func (m *Metrics) SetProductConfigsTotal(count int64) {
	m.safeExecute("SetProductConfigsTotal", func() {
		m.ProductConfigsTotal.Set(float64(count))
	})
}

// RecordResolution records one resolved configuration
func (m *Metrics) RecordResolution(family, source string, duration time.Duration) {
	m.safeExecute("RecordResolution", func() {
		if family == "" {
			family = "unknown"
		}
		m.ResolutionsTotal.WithLabelValues(family, source).Inc()
		if source == SourceComputed {
			m.ResolutionDuration.Observe(duration.Seconds())
		}
	})
}

// RecordCacheLookup records a cache hit or miss
func (m *Metrics) RecordCacheLookup(cache string, hit bool) {
	m.safeExecute("RecordCacheLookup", func() {
		result := "miss"
		if hit {
			result = "hit"
		}
		m.CacheRequestsTotal.WithLabelValues(cache, result).Inc()
	})
}

// RecordSettingsUpdate records a new global settings version
func (m *Metrics) RecordSettingsUpdate(version int64) {
	m.safeExecute("RecordSettingsUpdate", func() {
		m.SettingsUpdatedTotal.Inc()
		m.SettingsVersion.Set(float64(version))
	})
}

// SetSettingsVersion sets the current global settings version
func (m *Metrics) SetSettingsVersion(version int64) {
	m.safeExecute("SetSettingsVersion", func() {
		m.SettingsVersion.Set(float64(version))
	})
}

// IncrementSessionCreated increments the selection session counter
func (m *Metrics) IncrementSessionCreated() {
	m.safeExecute("IncrementSessionCreated", func() {
		m.SessionsCreatedTotal.Inc()
	})
}

// RecordPriceRefresh records the outcome of a catalog price refresh run
func (m *Metrics) RecordPriceRefresh(status string) {
	m.safeExecute("RecordPriceRefresh", func() {
		m.PriceRefreshTotal.WithLabelValues(status).Inc()
	})
}

// SetSettingsSubscribers sets the number of connected settings websocket clients
func (m *Metrics) SetSettingsSubscribers(count int) {
	m.safeExecute("SetSettingsSubscribers", func() {
		m.SettingsSubscribers.Set(float64(count))
	})
}
