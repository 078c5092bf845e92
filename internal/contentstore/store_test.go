package contentstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	base := t.TempDir()
	s, err := New(filepath.Join(base, "content"), filepath.Join(base, "errors"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestStore_PutContent(t *testing.T) {
	s := newTestStore(t)
	key := TopicKey{Class: "Class 11", Subject: "Biology", Chapter: "Microbes", Topic: "Gram staining"}

	path, err := s.PutContent(key, map[string]any{"notes": []any{"a"}})
	if err != nil {
		t.Fatalf("PutContent: %v", err)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read record: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("record is not valid JSON: %v", err)
	}
	if _, ok := got["notes"]; !ok {
		t.Errorf("expected notes key, got %v", got)
	}
	if filepath.Base(path) != "Gram staining.json" {
		t.Errorf("unexpected record filename: %s", path)
	}
}

func TestStore_PutErrorVerbatim(t *testing.T) {
	s := newTestStore(t)
	key := TopicKey{Class: "c", Subject: "s", Chapter: "ch", Topic: "t"}
	raw := "``json\n{\"broken: true"

	path, err := s.PutError(key, raw)
	if err != nil {
		t.Fatalf("PutError: %v", err)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read record: %v", err)
	}
	if string(body) != raw {
		t.Errorf("error record not verbatim:\n got %q\nwant %q", body, raw)
	}
	if filepath.Base(path) != "t_ERROR.json" {
		t.Errorf("expected _ERROR suffix, got %s", path)
	}
}

func TestStore_SanitizesKeySegments(t *testing.T) {
	s := newTestStore(t)
	key := TopicKey{Class: "a/b", Subject: "..", Chapter: "c\\d", Topic: ""}

	path, err := s.PutContent(key, map[string]any{"x": 1})
	if err != nil {
		t.Fatalf("PutContent: %v", err)
	}
	rel, err := filepath.Rel(s.contentDir, path)
	if err != nil {
		t.Fatalf("Rel: %v", err)
	}
	want := filepath.Join("a_b", "_", "c_d", "unnamed.json")
	if rel != want {
		t.Errorf("expected %s, got %s", want, rel)
	}
}
