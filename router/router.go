// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/hoodwatch/hoodwatch/auth"
	"github.com/hoodwatch/hoodwatch/cliparse"
	"github.com/hoodwatch/hoodwatch/geocode"
	"github.com/hoodwatch/hoodwatch/handlers"
	"github.com/hoodwatch/hoodwatch/middleware"
	"github.com/hoodwatch/hoodwatch/storage"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize stores and collaborators
	users := storage.NewUserStore(db)
	votes := storage.NewVoteStore(db)
	events := storage.NewEventStore(db, votes)
	authn := auth.NewAuthenticator(db, cfg.ServiceKeys)
	geo := geocode.NewClient(cfg.GeocoderURL)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(users, events)
	sessionHandler := handlers.NewSessionHandler(authn)
	eventHandler := handlers.NewEventHandler(events, authn, geo)
	votingHandler := handlers.NewVotingHandler(votes, events, authn)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Users
	mux.HandleFunc("POST /users", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("GET /users/{id}", middleware.WithLogging(userHandler.GetUser))
	mux.HandleFunc("GET /users/{id}/events", middleware.WithLogging(userHandler.GetUserEvents))

	// Sessions
	mux.HandleFunc("POST /login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(sessionHandler.Logout))

	// Events
	mux.HandleFunc("POST /events", middleware.WithLogging(eventHandler.CreateEvent))
	mux.HandleFunc("GET /events", middleware.WithLogging(eventHandler.ListEvents))
	mux.HandleFunc("GET /events/{id}", middleware.WithLogging(eventHandler.GetEvent))
	mux.HandleFunc("DELETE /events/{id}", middleware.WithLogging(eventHandler.DeleteEvent))

	// Voting
	mux.HandleFunc("POST /events/{id}/vote", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("DELETE /events/{id}/vote", middleware.WithLogging(votingHandler.Unvote))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hoodwatch API v1"))
	})

	// CORS outermost, then the credential gate, then routing
	return middleware.CORS(middleware.RequestGate(authn, mux))
}
