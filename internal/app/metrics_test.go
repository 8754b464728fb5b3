package app

import (
	"testing"
	"time"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.RecordKey(2 * time.Millisecond)
	m.RecordKey(4 * time.Millisecond)
	m.RecordUnknown()
	m.RecordDraw()
	m.RecordListing()
	m.RecordListing()

	s := m.Snapshot()
	if s.Keys != 2 {
		t.Errorf("Keys = %d, want 2", s.Keys)
	}
	if s.KeyAvg != 3*time.Millisecond {
		t.Errorf("KeyAvg = %v, want 3ms", s.KeyAvg)
	}
	if s.KeyMax != 4*time.Millisecond {
		t.Errorf("KeyMax = %v, want 4ms", s.KeyMax)
	}
	if s.Unknown != 1 || s.Draws != 1 || s.Listings != 2 {
		t.Errorf("unexpected counters: %+v", s)
	}
}

func TestMetricsEmpty(t *testing.T) {
	s := NewMetrics().Snapshot()
	if s.Keys != 0 || s.KeyAvg != 0 || s.KeyMax != 0 {
		t.Errorf("unexpected snapshot: %+v", s)
	}
}
