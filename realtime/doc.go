// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package realtime implements the websocket fanout hub for vote events.

# Hub

The hub owns the set of connected subscribers and runs a single event
loop:

	hub := realtime.NewHub()
	go hub.Run()

Handlers register new connections via Subscribe, which upgrades the HTTP
request and starts the read/write pumps:

	if err := hub.Subscribe(w, r); err != nil { ... }

# Broadcasting

After a successful vote, publish the new count:

	hub.BroadcastVote(pollID, optionID, votes)

This is fire-and-forget: the call never blocks the voting request, and
there are no delivery guarantees. A subscriber that is disconnected or
too slow to drain its send buffer is dropped and simply misses events.

# Wire Format

Each event is one JSON text frame:

	{"channel":"polls","event":"newVote","arguments":[pollId,optionId,votes]}

Subscribers are read-only; data frames they send are discarded. The
connection is kept alive with ping/pong control frames.
*/
package realtime
