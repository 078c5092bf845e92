package coursemap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coursegen/internal/contentstore"
	"coursegen/internal/generate"
	"coursegen/internal/syllabus"
)

// fakeGenerator returns canned responses keyed by a substring of the user
// prompt, or a fixed fallback.
type fakeGenerator struct {
	responses map[string]string
	fallback  string
	err       error
	calls     int
}

func (f *fakeGenerator) Chat(ctx context.Context, system, user string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	for substr, resp := range f.responses {
		if strings.Contains(user, substr) {
			return resp, nil
		}
	}
	return f.fallback, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testStore(t *testing.T) *contentstore.Store {
	t.Helper()
	base := t.TempDir()
	s, err := contentstore.New(filepath.Join(base, "content"), filepath.Join(base, "errors"))
	if err != nil {
		t.Fatalf("contentstore.New: %v", err)
	}
	return s
}

const validContent = `{"notes": [{"title": "Intro", "points": ["p1"]}], "formulas": [], "realworld": []}`

func TestBuildChapter_AllOutcomes(t *testing.T) {
	gen := &fakeGenerator{
		responses: map[string]string{
			"Gram staining": validContent,
			"Culture media": "```json\n" + validContent + "\n```",
			"Microscopy":    `{"broken: [`,
		},
	}
	b := NewBuilder(gen, testStore(t), testLogger())

	unit := syllabus.Unit{
		Number: 1,
		Name:   "Basic Techniques",
		Topics: []string{"Gram staining", "Culture media", "Microscopy"},
	}
	ch := b.BuildChapter(context.Background(), "Class 11", "Biology", unit)

	if ch.ID != 1 || ch.ChapterName != "Basic Techniques" {
		t.Errorf("chapter header: %+v", ch)
	}
	if ch.Title != "Unit 1: Basic Techniques" {
		t.Errorf("unexpected title %q", ch.Title)
	}
	if len(ch.Topics) != 3 {
		t.Fatalf("expected 3 topic records, got %d", len(ch.Topics))
	}

	direct := ch.Topics[0]
	if direct.Failed || len(direct.Notes) != 1 {
		t.Errorf("direct topic: %+v", direct)
	}
	if direct.Raw != validContent {
		t.Errorf("direct topic raw: %q", direct.Raw)
	}

	repaired := ch.Topics[1]
	if repaired.Failed || len(repaired.Notes) != 1 {
		t.Errorf("repaired topic: %+v", repaired)
	}
	// The persisted text is the cleaned form, fences gone.
	if strings.Contains(repaired.Raw, "```") {
		t.Errorf("repaired raw still fenced: %q", repaired.Raw)
	}

	failed := ch.Topics[2]
	if !failed.Failed {
		t.Errorf("expected failure record, got %+v", failed)
	}
	if failed.Notes == nil || len(failed.Notes) != 0 {
		t.Errorf("failure record must carry empty sections: %+v", failed)
	}
	if failed.Raw == "" {
		t.Error("failure record must keep the candidate text")
	}
}

func TestBuildChapter_RetryableErrorDegradesToFailure(t *testing.T) {
	gen := &fakeGenerator{err: &generate.RetryableError{StatusCode: 503, Message: "busy"}}
	b := NewBuilder(gen, testStore(t), testLogger())

	unit := syllabus.Unit{Number: 2, Name: "X", Topics: []string{"only topic"}}
	ch := b.BuildChapter(context.Background(), "c", "s", unit)

	if gen.calls != generate.MaxAttempts {
		t.Errorf("expected %d attempts, got %d", generate.MaxAttempts, gen.calls)
	}
	if len(ch.Topics) != 1 || !ch.Topics[0].Failed {
		t.Fatalf("expected one failed record, got %+v", ch.Topics)
	}
}

func TestBuildChapter_NonRetryableErrorStopsRetrying(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("bad request")}
	b := NewBuilder(gen, testStore(t), testLogger())

	unit := syllabus.Unit{Number: 3, Name: "Y", Topics: []string{"t"}}
	ch := b.BuildChapter(context.Background(), "c", "s", unit)

	if gen.calls != 1 {
		t.Errorf("expected 1 attempt for non-retryable error, got %d", gen.calls)
	}
	if !ch.Topics[0].Failed {
		t.Errorf("expected failure record, got %+v", ch.Topics[0])
	}
}

func TestBuildChapter_CancelledContextStops(t *testing.T) {
	gen := &fakeGenerator{fallback: validContent}
	b := NewBuilder(gen, testStore(t), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	unit := syllabus.Unit{Number: 1, Name: "Z", Topics: []string{"a", "b"}}
	ch := b.BuildChapter(ctx, "c", "s", unit)
	if len(ch.Topics) != 0 {
		t.Fatalf("expected no topics after cancellation, got %d", len(ch.Topics))
	}
}

func TestMapSnapshotAndMarshal(t *testing.T) {
	m := NewMap()
	m.Append("Class 11", "Biology", &Chapter{
		ID:          1,
		Class:       "Class 11",
		ChapterName: "Microbes",
		Title:       "Unit 1: Microbes",
		Topics: []TopicRecord{
			{Name: "Gram  staining", Notes: []generate.NoteSection{}, Formulas: []generate.FormulaSection{}, Realworld: []generate.RealWorldItem{}},
		},
	})

	snap := m.Snapshot()
	if len(snap["Class 11"]["Biology"]) != 1 {
		t.Fatalf("unexpected snapshot: %v", snap)
	}

	body, err := MarshalSnapshot(snap)
	if err != nil {
		t.Fatalf("MarshalSnapshot: %v", err)
	}
	out := string(body)
	// Export-time cleanup collapses the double space in the topic name.
	if !strings.Contains(out, `"Gram staining"`) {
		t.Errorf("expected cleaned topic name in output:\n%s", out)
	}
	if strings.Contains(out, "Failed") || strings.Contains(out, "Raw") {
		t.Errorf("internal fields leaked into export:\n%s", out)
	}
}

func TestExportJS(t *testing.T) {
	m := NewMap()
	m.Append("c", "s", &Chapter{ID: 1, Class: "c", ChapterName: "n", Title: "Unit 1: n", Topics: []TopicRecord{}})

	path := filepath.Join(t.TempDir(), "courseDataMap.js")
	if err := ExportJS(m, path); err != nil {
		t.Fatalf("ExportJS: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	body := string(raw)
	if !strings.HasPrefix(body, "export const courseDataMap = ") {
		t.Errorf("missing export prefix: %q", body[:40])
	}
	if !strings.HasSuffix(strings.TrimSpace(body), ";") {
		t.Errorf("missing trailing semicolon")
	}
}
