// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: question, options (label each)
  - VoteRequest: optionId
  - LoginRequest: username, password

# Response Types

Types for JSON responses:

  - LoginResponse: token
  - NegotiateResponse: url, accessToken
  - VoteResponse: pollId, optionId, votes
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: question with its options
  - PollOption: label plus running vote tally, owned by one poll

# Realtime

VoteEvent is the message written to every websocket subscriber after a
successful vote:

	{"channel":"polls","event":"newVote","arguments":[pollId,optionId,votes]}
*/
package models
