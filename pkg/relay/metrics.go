package relay

import (
	"sync"
	"time"
)

// Metrics counts delivery outcomes per transport. Deliveries run on
// independent goroutines, so everything is mutex-guarded.
type Metrics struct {
	mu sync.RWMutex

	delivered      map[string]int64
	failed         map[string]int64
	lastUpdateTime time.Time
}

// NewMetrics creates an empty metrics set.
func NewMetrics() *Metrics {
	return &Metrics{
		delivered:      make(map[string]int64),
		failed:         make(map[string]int64),
		lastUpdateTime: time.Now(),
	}
}

// RecordDelivered increments the delivered count for a transport.
func (m *Metrics) RecordDelivered(transport string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delivered[transport]++
	m.lastUpdateTime = time.Now()
}

// RecordFailed increments the failed count for a transport.
func (m *Metrics) RecordFailed(transport string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed[transport]++
	m.lastUpdateTime = time.Now()
}

// Delivered returns the delivered count for a transport.
func (m *Metrics) Delivered(transport string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.delivered[transport]
}

// Failed returns the failed count for a transport.
func (m *Metrics) Failed(transport string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.failed[transport]
}

// Snapshot returns the current metrics as a map, keyed
// delivered_<transport> and failed_<transport>.
func (m *Metrics) Snapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	metrics := map[string]interface{}{
		"last_update_time": m.lastUpdateTime.Unix(),
	}
	for transport, count := range m.delivered {
		metrics["delivered_"+transport] = count
	}
	for transport, count := range m.failed {
		metrics["failed_"+transport] = count
	}
	return metrics
}
