package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts what happened during a session.
type Metrics struct {
	keyCount     atomic.Uint64
	keyTotalNs   atomic.Int64
	keyMaxNs     atomic.Int64
	unknownCount atomic.Uint64
	drawCount    atomic.Uint64
	listCount    atomic.Uint64
	reloadCount  atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordKey records the time spent applying one key.
func (m *Metrics) RecordKey(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.keyCount.Add(1)
	m.keyTotalNs.Add(ns)

	for {
		old := m.keyMaxNs.Load()
		if ns <= old || m.keyMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordUnknown records an escape sequence that decoded to nothing.
func (m *Metrics) RecordUnknown() {
	m.unknownCount.Add(1)
}

// RecordDraw records a current-line redraw.
func (m *Metrics) RecordDraw() {
	m.drawCount.Add(1)
}

// RecordListing records a full listing.
func (m *Metrics) RecordListing() {
	m.listCount.Add(1)
}

// RecordReload records a configuration applied during the session.
func (m *Metrics) RecordReload() {
	m.reloadCount.Add(1)
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Keys     uint64
	KeyAvg   time.Duration
	KeyMax   time.Duration
	Unknown  uint64
	Draws    uint64
	Listings uint64
	Reloads  uint64
	Uptime   time.Duration
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Keys:     m.keyCount.Load(),
		KeyMax:   time.Duration(m.keyMaxNs.Load()),
		Unknown:  m.unknownCount.Load(),
		Draws:    m.drawCount.Load(),
		Listings: m.listCount.Load(),
		Reloads:  m.reloadCount.Load(),
		Uptime:   time.Since(m.startTime),
	}
	if s.Keys > 0 {
		s.KeyAvg = time.Duration(m.keyTotalNs.Load() / int64(s.Keys))
	}
	return s
}

// Timer measures elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
