package monitoring

import (
	"sync"
	"time"
)

// Monitor collects named runtime counters for the JSON metrics endpoint.
type Monitor struct {
	counters   map[string]int64
	countersMu sync.RWMutex
	startTime  time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		counters:  make(map[string]int64),
		startTime: time.Now(),
	}
}

// Incr increments a named counter by one.
func (m *Monitor) Incr(name string) {
	m.countersMu.Lock()
	defer m.countersMu.Unlock()
	m.counters[name]++
}

// Counter returns the current value of a named counter.
func (m *Monitor) Counter(name string) int64 {
	m.countersMu.RLock()
	defer m.countersMu.RUnlock()
	return m.counters[name]
}

// Metrics returns all counters plus system metrics.
func (m *Monitor) Metrics() map[string]interface{} {
	m.countersMu.RLock()
	defer m.countersMu.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.counters)+1)
	for k, v := range m.counters {
		metrics[k] = v
	}

	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all counters
func (m *Monitor) Reset() {
	m.countersMu.Lock()
	defer m.countersMu.Unlock()
	m.counters = make(map[string]int64)
}
