// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the live polls API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, hub)

# Endpoints

Health:

	GET /health

Login (anonymous):

	POST /login - Exchange superuser credentials for a bearer token

Realtime channel (anonymous):

	GET/POST /negotiate - Connection descriptor {url, accessToken}
	GET      /polls/ws  - Websocket endpoint (access_token query param)

Poll management (requires Authorization: Bearer <token>):

	POST /polls      - Create poll with options
	GET  /polls/{id} - Poll with options and current vote counts

Voting (anonymous):

	POST /polls/vote - Record a vote, broadcast the new count

# Authorization Policy

Exactly two endpoints are protected: creating and reading polls. Login
and negotiate must stay anonymous (they bootstrap credentials) and
voting is deliberately open so poll audiences don't need accounts.

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(cfg)
	pollHandler := handlers.NewPollHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg, hub)
	realtimeHandler := handlers.NewRealtimeHandler(cfg, hub)
*/
package router
