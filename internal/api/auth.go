package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nerrad567/panelgate/internal/auth"
)

// loginRequest is the POST /login body.
type loginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

// loginResponse is the POST /login success body.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// handleLogin verifies credentials and issues a session token.
//
// POST /login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Username == "" || req.PIN == "" {
		writeBadRequest(w, "username and pin are required")
		return
	}

	token, err := s.gateway.Login(r.Context(), req.Username, req.PIN)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeUnauthorized(w, "Invalid credentials")
			return
		}
		s.logger.Error("login failed", "error", err)
		writeInternalError(w, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
