// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/livepoll/cliparse"
	"github.com/danielhkuo/livepoll/handlers"
	"github.com/danielhkuo/livepoll/middleware"
	"github.com/danielhkuo/livepoll/realtime"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, hub *realtime.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	pollHandler := handlers.NewPollHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg, hub)
	realtimeHandler := handlers.NewRealtimeHandler(cfg, hub)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Login (anonymous)
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))

	// Realtime channel (anonymous by design)
	mux.HandleFunc("GET /negotiate", middleware.WithLogging(realtimeHandler.Negotiate))
	mux.HandleFunc("POST /negotiate", middleware.WithLogging(realtimeHandler.Negotiate))
	mux.HandleFunc("GET "+handlers.WebsocketPath, realtimeHandler.ServeWS)

	// Poll management (bearer token required)
	mux.HandleFunc("POST /polls", middleware.WithLogging(middleware.RequireAuth(cfg, pollHandler.CreatePoll)))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(middleware.RequireAuth(cfg, pollHandler.GetPoll)))

	// Voting (anonymous)
	mux.HandleFunc("POST /polls/vote", middleware.WithLogging(votingHandler.Vote))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("livepoll API v1"))
	})

	return mux
}
