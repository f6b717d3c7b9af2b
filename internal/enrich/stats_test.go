package enrich

import (
	"testing"
	"time"
)

func TestStats_EmptySnapshot(t *testing.T) {
	s := NewStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 {
		t.Errorf("expected empty snapshot, got count %d", snap.Count)
	}
}

func TestStats_Aggregates(t *testing.T) {
	s := NewStats(time.Hour)
	for _, ms := range []int64{100, 200, 300, 400} {
		s.Record(ms)
	}
	snap := s.Snapshot()
	if snap.Count != 4 {
		t.Fatalf("expected 4 samples, got %d", snap.Count)
	}
	if snap.AvgMs != 250 {
		t.Errorf("expected avg 250, got %.1f", snap.AvgMs)
	}
	if snap.MaxMs != 400 {
		t.Errorf("expected max 400, got %d", snap.MaxMs)
	}
	if snap.P50Ms < 200 || snap.P50Ms > 300 {
		t.Errorf("p50 out of expected range: %.1f", snap.P50Ms)
	}
}

func TestStats_NegativeClampedToZero(t *testing.T) {
	s := NewStats(time.Hour)
	s.Record(-5)
	snap := s.Snapshot()
	if snap.MaxMs != 0 {
		t.Errorf("expected clamped sample, got max %d", snap.MaxMs)
	}
}

func TestStats_WindowPrunes(t *testing.T) {
	s := NewStats(10 * time.Millisecond)
	s.Record(100)
	time.Sleep(25 * time.Millisecond)
	s.Record(200)
	snap := s.Snapshot()
	if snap.Count != 1 {
		t.Errorf("expected old sample pruned, got count %d", snap.Count)
	}
	if snap.MaxMs != 200 {
		t.Errorf("expected surviving sample 200, got %d", snap.MaxMs)
	}
}
