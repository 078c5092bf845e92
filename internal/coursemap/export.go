package coursemap

import (
	"fmt"
	"os"
)

// ExportJS writes the aggregate as an ES module for the frontend:
// `export const courseDataMap = {...};`.
func ExportJS(m *Map, path string) error {
	body, err := MarshalSnapshot(m.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal course map: %w", err)
	}
	out := append([]byte("export const courseDataMap = "), body...)
	out = append(out, []byte(";\n")...)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write course map: %w", err)
	}
	return nil
}

// ExportJSON writes the aggregate as plain JSON.
func ExportJSON(m *Map, path string) error {
	body, err := MarshalSnapshot(m.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal course map: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write course map: %w", err)
	}
	return nil
}
