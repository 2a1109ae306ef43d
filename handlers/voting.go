// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/livepoll/cliparse"
	"github.com/danielhkuo/livepoll/middleware"
	"github.com/danielhkuo/livepoll/models"
	"github.com/danielhkuo/livepoll/realtime"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	hub *realtime.Hub
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config, hub *realtime.Hub) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg, hub: hub}
}

// Vote handles POST /polls/vote
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Single-statement atomic increment. Concurrent votes serialize on
	// the row inside the store, so no update is ever lost; never read
	// the count and write it back in two round trips.
	var resp models.VoteResponse
	resp.OptionID = req.OptionID
	err := h.db.QueryRow(`
		UPDATE poll_option
		SET votes = votes + 1
		WHERE id = $1
		RETURNING poll_id, votes
	`, req.OptionID).Scan(&resp.PollID, &resp.Votes)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Option not found")
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "option_id", req.OptionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	// Fire-and-forget: subscribers get the new count, the HTTP caller
	// doesn't wait on delivery
	h.hub.BroadcastVote(resp.PollID, resp.OptionID, resp.Votes)

	slog.Info("vote recorded", "poll_id", resp.PollID, "option_id", resp.OptionID, "votes", resp.Votes)

	middleware.JSONResponse(w, http.StatusOK, resp)
}
