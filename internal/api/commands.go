package api

import (
	"errors"
	"net/http"

	"github.com/nerrad567/panelgate/internal/auth"
	"github.com/nerrad567/panelgate/internal/bridge"
	"github.com/nerrad567/panelgate/internal/gateway"
)

// handleUnlock releases the door lock. Admin only.
//
// POST /unlock
func (s *Server) handleUnlock(w http.ResponseWriter, r *http.Request) {
	s.handleCommand(w, r, bridge.VerbUnlock)
}

// handleLock engages the door lock.
//
// POST /lock
func (s *Server) handleLock(w http.ResponseWriter, r *http.Request) {
	s.handleCommand(w, r, bridge.VerbLock)
}

// handleArm arms the system.
//
// POST /api/arm
func (s *Server) handleArm(w http.ResponseWriter, r *http.Request) {
	s.handleCommand(w, r, bridge.VerbArm)
}

// handleDisarm disarms the system.
//
// POST /api/disarm
func (s *Server) handleDisarm(w http.ResponseWriter, r *http.Request) {
	s.handleCommand(w, r, bridge.VerbDisarm)
}

// handleCommand runs one device command through the gateway and maps
// its error taxonomy onto HTTP statuses.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request, verb bridge.Verb) {
	status, err := s.gateway.Command(r.Context(), bearerToken(r), verb)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			writeUnauthorized(w, "Token expired")
		case errors.Is(err, auth.ErrTokenInvalid):
			writeUnauthorized(w, "Invalid token")
		case errors.Is(err, gateway.ErrForbidden):
			writeForbidden(w, "Insufficient permissions")
		case errors.Is(err, bridge.ErrTransportUnavailable):
			writeServiceUnavailable(w, "device transport unavailable")
		default:
			s.logger.Error("command failed", "verb", verb, "error", err)
			writeInternalError(w, "command failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}
