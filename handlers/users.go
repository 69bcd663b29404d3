// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"regexp"
	"strconv"
	"unicode"

	"github.com/hoodwatch/hoodwatch/middleware"
	"github.com/hoodwatch/hoodwatch/models"
	"github.com/hoodwatch/hoodwatch/storage"
)

// 4-20 characters, letters and digits only
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{4,20}$`)

type UserHandler struct {
	users  *storage.UserStore
	events *storage.EventStore
}

func NewUserHandler(users *storage.UserStore, events *storage.EventStore) *UserHandler {
	return &UserHandler{users: users, events: events}
}

// Register handles POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !usernamePattern.MatchString(req.Username) {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			"Username must be between 4 and 20 characters, not containing spaces or special symbols")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email is not valid")
		return
	}
	if !validPassword(req.Password) {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			"Password must be 8 characters long, containing at least one uppercase, one lowercase and one number")
		return
	}

	id, err := h.users.Create(req.Username, req.Email, req.Password)
	if errors.Is(err, storage.ErrCreationFailed) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username or email already in use")
		return
	}
	if err != nil {
		slog.Error("failed to create user", "username", req.Username, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	slog.Info("user registered", "user_id", id, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateUserResponse{
		UserID: id,
	})
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Id must be a valid positive integer")
		return
	}

	user, err := h.users.GetByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No user with id "+r.PathValue("id"))
		return
	}
	if err != nil {
		slog.Error("failed to query user", "user_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// GetUserEvents handles GET /users/{id}/events
// Returns the user's submitted events without vote counts.
func (h *UserHandler) GetUserEvents(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Id must be a valid positive integer")
		return
	}

	events, err := h.events.GetByUser(id)
	if err != nil {
		slog.Error("failed to query user events", "user_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}

// validPassword requires at least 8 characters with one uppercase, one
// lowercase, and one digit, and no whitespace. Go's regexp has no
// lookahead, so this is spelled out.
func validPassword(p string) bool {
	if len(p) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, c := range p {
		switch {
		case unicode.IsSpace(c):
			return false
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsLower(c):
			lower = true
		case unicode.IsDigit(c):
			digit = true
		}
	}
	return upper && lower && digit
}
