package contentstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TopicKey addresses one persisted topic record.
type TopicKey struct {
	Class   string
	Subject string
	Chapter string
	Topic   string
}

// Store persists one file per topic. Valid records go under the content
// root as indented JSON; unrecoverable ones go under the error root with
// an _ERROR suffix, body holding the best-effort cleaned text verbatim so
// nothing is lost for later inspection.
type Store struct {
	contentDir string
	errorDir   string
}

func New(contentDir, errorDir string) (*Store, error) {
	for _, dir := range []string{contentDir, errorDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	return &Store{contentDir: contentDir, errorDir: errorDir}, nil
}

// PutContent writes a successful topic record and returns the path used.
func (s *Store) PutContent(key TopicKey, data map[string]any) (string, error) {
	path := s.recordPath(s.contentDir, key, ".json")
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return path, fmt.Errorf("marshal topic %s: %w", key.Topic, err)
	}
	return path, s.write(path, body)
}

// PutError writes an unrecoverable topic record: the cleaned or raw
// candidate text, byte for byte.
func (s *Store) PutError(key TopicKey, text string) (string, error) {
	path := s.recordPath(s.errorDir, key, "_ERROR.json")
	return path, s.write(path, []byte(text))
}

func (s *Store) write(path string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create record dir: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

func (s *Store) recordPath(root string, key TopicKey, suffix string) string {
	return filepath.Join(root,
		sanitizeSegment(key.Class),
		sanitizeSegment(key.Subject),
		sanitizeSegment(key.Chapter),
		sanitizeSegment(key.Topic)+suffix,
	)
}

// sanitizeSegment keeps a key component path-safe.
func sanitizeSegment(s string) string {
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, "..", "_")
	s = strings.TrimSpace(s)
	if s == "" {
		return "unnamed"
	}
	return s
}
