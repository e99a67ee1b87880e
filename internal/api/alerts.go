package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nerrad567/panelgate/internal/gateway"
)

// alertRequest is the POST /alert body.
type alertRequest struct {
	Message string `json:"message"`
}

// handleAlert records an alert in the activity log.
//
// POST /alert
//
// Alerts arrive from sensors and panic buttons that hold no session,
// so this route is deliberately unauthenticated. It can only append
// text to the log; it moves no hardware.
func (s *Server) handleAlert(w http.ResponseWriter, r *http.Request) {
	var req alertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if err := s.gateway.Alert(r.Context(), req.Message); err != nil {
		switch {
		case errors.Is(err, gateway.ErrEmptyMessage), errors.Is(err, gateway.ErrMessageTooLong):
			writeBadRequest(w, err.Error())
		default:
			s.logger.Error("alert failed", "error", err)
			writeInternalError(w, "alert failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "alerted"})
}
