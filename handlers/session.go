// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hoodwatch/hoodwatch/auth"
	"github.com/hoodwatch/hoodwatch/middleware"
	"github.com/hoodwatch/hoodwatch/models"
	"github.com/hoodwatch/hoodwatch/storage"
)

type SessionHandler struct {
	authn *auth.Authenticator
}

func NewSessionHandler(authn *auth.Authenticator) *SessionHandler {
	return &SessionHandler{authn: authn}
}

// Login handles POST /login
// Checks credentials, then issues a fresh token. Any previously issued
// token for the user stops resolving.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	userID, err := h.authn.CheckPassword(req.Username, req.Password)
	if errors.Is(err, storage.ErrNoMatch) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Login is incorrect")
		return
	}
	if err != nil {
		slog.Error("failed to check password", "username", req.Username, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := h.authn.GenerateToken(userID)
	if err != nil {
		slog.Error("failed to generate token", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", userID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.AuthTokenResponse{
		AuthToken: token,
		UserID:    userID,
		Username:  req.Username,
	})
}

// Logout handles POST /logout
// An already-invalid token is an authorization failure, not a server error.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(middleware.AuthTokenHeader)

	userID, err := h.authn.ResolveToken(token)
	if errors.Is(err, storage.ErrNoMatch) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Your auth token is already invalid")
		return
	}
	if err != nil {
		slog.Error("failed to resolve token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := h.authn.InvalidateToken(userID); err != nil {
		slog.Error("failed to invalidate token", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	slog.Info("user logged out", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Logged out, discard your token",
	})
}
