// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the live polls API.

# Handler Types

Each handler is a struct with its dependencies injected at construction:

  - AuthHandler: superuser login, issues bearer tokens
  - PollHandler: poll creation and retrieval
  - VotingHandler: vote recording plus realtime broadcast
  - RealtimeHandler: connection negotiation and websocket upgrades

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg, hub)

# Poll Flow

	POST /login      → Login (anonymous, returns bearer token)
	POST /polls      → CreatePoll (requires bearer token)
	GET  /polls/{id} → GetPoll (requires bearer token)
	POST /polls/vote → Vote (anonymous)

CreatePoll rejects an empty question or fewer than 2 options with 400.
GetPoll returns 404 for an unknown id. Vote returns 404 for an unknown
option id; on success the count is incremented atomically in the store
and a newVote event goes out to realtime subscribers.

# Realtime Flow

	GET/POST /negotiate → Negotiate (anonymous, returns {url, accessToken})
	GET      /polls/ws  → ServeWS (connection token via access_token query param)

Events flow one way, server to subscriber, with no delivery guarantees.
*/
package handlers
