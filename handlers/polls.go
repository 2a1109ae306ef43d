// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/livepoll/cliparse"
	"github.com/danielhkuo/livepoll/middleware"
	"github.com/danielhkuo/livepoll/models"
)

type PollHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{db: db, cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Question == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}
	if len(req.Options) < 2 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least 2 options are required")
		return
	}
	for _, opt := range req.Options {
		if opt.Label == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "option label is required")
			return
		}
	}

	// Insert poll and options in one transaction so a failed option
	// insert never leaves a partial poll behind
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}
	defer tx.Rollback()

	poll := models.Poll{Question: req.Question}
	err = tx.QueryRow(`
		INSERT INTO poll (question)
		VALUES ($1)
		RETURNING id
	`, req.Question).Scan(&poll.ID)
	if err != nil {
		slog.Error("failed to insert poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	poll.Options = make([]models.PollOption, 0, len(req.Options))
	for _, opt := range req.Options {
		option := models.PollOption{PollID: poll.ID, Label: opt.Label}
		err = tx.QueryRow(`
			INSERT INTO poll_option (poll_id, label)
			VALUES ($1, $2)
			RETURNING id
		`, poll.ID, opt.Label).Scan(&option.ID)
		if err != nil {
			slog.Error("failed to insert option", "error", err, "poll_id", poll.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
			return
		}
		poll.Options = append(poll.Options, option)
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "options", len(poll.Options))

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		// A non-integer id can never name a poll
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	var poll models.Poll
	err = h.db.QueryRow(`
		SELECT id, question FROM poll WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Question)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Get options with current vote counts
	rows, err := h.db.Query(`
		SELECT id, poll_id, label, votes
		FROM poll_option
		WHERE poll_id = $1
		ORDER BY id
	`, poll.ID)

	if err != nil {
		slog.Error("failed to query options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	poll.Options = []models.PollOption{}
	for rows.Next() {
		var opt models.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Label, &opt.Votes); err != nil {
			slog.Error("failed to scan option", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		poll.Options = append(poll.Options, opt)
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}
