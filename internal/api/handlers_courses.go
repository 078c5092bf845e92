package api

import (
	"net/http"

	"coursegen/internal/coursemap"
)

// handleCourses serves the current course map aggregate. Leaf strings go
// through the same cleanup pass as the file exports, so API reads and
// exported files always agree.
func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	body, err := coursemap.MarshalSnapshot(s.orchestrator.Courses().Snapshot())
	if err != nil {
		jsonError(w, "failed to serialize course map: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
