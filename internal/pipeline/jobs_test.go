package pipeline

import (
	"testing"
	"time"
)

func TestJob_SetStatusAndSnapshot(t *testing.T) {
	now := time.Now()
	job := &Job{
		ID:        "j1",
		DocID:     "d1",
		Filename:  "syllabus.pdf",
		Class:     "Class 11",
		Subject:   "Biology",
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
	}

	job.SetStatus(StatusGenerating, "generating")
	job.SetTotals(3, 12)
	job.IncrUnitsProcessed()
	job.AddTopicResults(4, 1)
	job.AddError("unit 2: backend unavailable")

	snap := job.Snapshot()
	if snap.Status != StatusGenerating || snap.Phase != "generating" {
		t.Errorf("status/phase: %s/%s", snap.Status, snap.Phase)
	}
	if snap.Progress.TotalUnits != 3 || snap.Progress.TotalTopics != 12 {
		t.Errorf("totals: %+v", snap.Progress)
	}
	if snap.Progress.UnitsProcessed != 1 {
		t.Errorf("units processed: %d", snap.Progress.UnitsProcessed)
	}
	if snap.Progress.TopicsGenerated != 4 || snap.Progress.TopicsFailed != 1 {
		t.Errorf("topic counts: %+v", snap.Progress)
	}
	if len(snap.Progress.Errors) != 1 {
		t.Errorf("errors: %v", snap.Progress.Errors)
	}
}

func TestJob_SnapshotErrorsNeverNil(t *testing.T) {
	job := &Job{ID: "j2"}
	if errs := job.Snapshot().Progress.Errors; errs == nil {
		t.Fatal("snapshot errors slice must not be nil")
	}
}

func TestJob_FileDataRoundTrip(t *testing.T) {
	job := &Job{ID: "j3"}
	job.SetFileData([]byte("pdf bytes"))
	if string(job.FileData()) != "pdf bytes" {
		t.Fatalf("file data lost: %q", job.FileData())
	}
}

func TestJobStore_PutGetCleanup(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)

	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	stale := &Job{ID: "stale", UpdatedAt: time.Now().Add(-time.Minute)}
	store.Put(fresh)
	store.Put(stale)

	if store.Get("fresh") == nil || store.Get("stale") == nil {
		t.Fatal("expected both jobs present before cleanup")
	}

	store.Cleanup()
	if store.Get("stale") != nil {
		t.Error("expected stale job evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("expected fresh job retained")
	}
}

func TestContentHashHex(t *testing.T) {
	a := ContentHashHex([]byte("same"))
	b := ContentHashHex([]byte("same"))
	c := ContentHashHex([]byte("different"))
	if a != b {
		t.Error("hash not deterministic")
	}
	if a == c {
		t.Error("distinct content collided")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != 26 {
			t.Fatalf("expected 26-char ULID, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
