package generate

import (
	"testing"
	"time"
)

func TestLLMStats_Empty(t *testing.T) {
	s := NewLLMStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 || snap.Failures != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestLLMStats_RecordAndAggregate(t *testing.T) {
	s := NewLLMStats(time.Hour)
	s.Record(100)
	s.Record(200)
	s.Record(300)

	snap := s.Snapshot()
	if snap.Count != 3 {
		t.Fatalf("expected 3 samples, got %d", snap.Count)
	}
	if snap.MinMs != 100 || snap.MaxMs != 300 {
		t.Errorf("min/max: got %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 200 {
		t.Errorf("avg: got %f", snap.AvgMs)
	}
	if snap.P50Ms != 200 {
		t.Errorf("p50: got %f", snap.P50Ms)
	}
}

func TestLLMStats_NegativeClamped(t *testing.T) {
	s := NewLLMStats(time.Hour)
	s.Record(-5)
	if snap := s.Snapshot(); snap.MinMs != 0 {
		t.Fatalf("expected clamp to 0, got %d", snap.MinMs)
	}
}

func TestLLMStats_FailuresCountSeparately(t *testing.T) {
	s := NewLLMStats(time.Hour)
	s.Record(50)
	s.RecordFailure()
	s.RecordFailure()

	snap := s.Snapshot()
	if snap.Count != 1 {
		t.Errorf("expected 1 latency sample, got %d", snap.Count)
	}
	if snap.Failures != 2 {
		t.Errorf("expected 2 failures, got %d", snap.Failures)
	}
}

func TestLLMStats_WindowEviction(t *testing.T) {
	s := NewLLMStats(10 * time.Millisecond)
	s.Record(100)
	time.Sleep(20 * time.Millisecond)
	s.Record(200)

	snap := s.Snapshot()
	if snap.Count != 1 || snap.MinMs != 200 {
		t.Fatalf("expected only the fresh sample, got %+v", snap)
	}
}
