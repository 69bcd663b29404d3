// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hoodwatch/hoodwatch/auth"
	"github.com/hoodwatch/hoodwatch/middleware"
	"github.com/hoodwatch/hoodwatch/models"
	"github.com/hoodwatch/hoodwatch/storage"
)

type VotingHandler struct {
	votes  *storage.VoteStore
	events *storage.EventStore
	authn  *auth.Authenticator
}

func NewVotingHandler(votes *storage.VoteStore, events *storage.EventStore, authn *auth.Authenticator) *VotingHandler {
	return &VotingHandler{votes: votes, events: events, authn: authn}
}

// Vote handles POST /events/{id}/vote
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || eventID < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Id must be a valid positive integer")
		return
	}

	userID, err := h.authn.ResolveToken(r.Header.Get(middleware.AuthTokenHeader))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Your auth token is not valid")
		return
	}

	// Voting on a missing event should 404, not surface a constraint error
	if _, err := h.events.GetSubmitter(eventID); errors.Is(err, storage.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No event with id "+r.PathValue("id"))
		return
	} else if err != nil {
		slog.Error("failed to query event", "event_id", eventID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	err = h.votes.Vote(userID, eventID)
	if errors.Is(err, storage.ErrDuplicateVote) {
		middleware.ErrorResponse(w, http.StatusConflict, "You already voted for this event")
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "user_id", userID, "event_id", eventID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "user_id", userID, "event_id", eventID)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		EventID: eventID,
		Votes:   h.countOrZero(eventID),
	})
}

// Unvote handles DELETE /events/{id}/vote
func (h *VotingHandler) Unvote(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || eventID < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Id must be a valid positive integer")
		return
	}

	userID, err := h.authn.ResolveToken(r.Header.Get(middleware.AuthTokenHeader))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Your auth token is not valid")
		return
	}

	removed, err := h.votes.Unvote(userID, eventID)
	if err != nil {
		slog.Error("failed to remove vote", "user_id", userID, "event_id", eventID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove vote")
		return
	}
	if !removed {
		middleware.ErrorResponse(w, http.StatusNotFound, "No vote to remove")
		return
	}

	slog.Info("vote removed", "user_id", userID, "event_id", eventID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		EventID: eventID,
		Votes:   h.countOrZero(eventID),
	})
}

func (h *VotingHandler) countOrZero(eventID int) int {
	n, err := h.votes.CountVotes(eventID)
	if err != nil {
		slog.Warn("vote count unavailable, defaulting to 0", "event_id", eventID, "error", err)
		return 0
	}
	return n
}
