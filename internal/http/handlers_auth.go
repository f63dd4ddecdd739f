package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/wosadvpro-arch/finance-buddy/internal/session"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	acct, err := a.accounts.Register(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, session.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, session.ErrWeakPassword), errors.Is(err, session.ErrMissingFields):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	token, err := a.openSession(r, acct)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to open session", "account", acct.Key(), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to open session")
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{Token: token, Name: acct.Name, Email: acct.Email})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	acct, err := a.accounts.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, session.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	token, err := a.openSession(r, acct)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to open session", "account", acct.Key(), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to open session")
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: token, Name: acct.Name, Email: acct.Email})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request, _ *clientSession) {
	token := bearerToken(r)
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}
