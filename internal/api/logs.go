package api

import (
	"net/http"
	"strconv"
	"time"
)

// logEntry is one activity line as serialised on /api/logs.
type logEntry struct {
	ID    int64     `json:"id"`
	Time  time.Time `json:"time"`
	Event string    `json:"event"`
}

// handleLogs returns recent activity entries, newest first.
//
// GET /api/logs?limit=N
//
// The limit is optional and capped server-side; omitting it returns
// the default window.
func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := s.gateway.RecentLogs(r.Context(), limit)
	if err != nil {
		s.logger.Error("reading logs failed", "error", err)
		writeInternalError(w, "reading logs failed")
		return
	}

	out := make([]logEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, logEntry{ID: e.ID, Time: e.CreatedAt, Event: e.Event})
	}

	writeJSON(w, http.StatusOK, out)
}
