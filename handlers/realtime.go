// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/livepoll/auth"
	"github.com/danielhkuo/livepoll/cliparse"
	"github.com/danielhkuo/livepoll/middleware"
	"github.com/danielhkuo/livepoll/models"
	"github.com/danielhkuo/livepoll/realtime"
)

// WebsocketPath is where negotiate points subscribers
const WebsocketPath = "/polls/ws"

type RealtimeHandler struct {
	cfg cliparse.Config
	hub *realtime.Hub
}

func NewRealtimeHandler(cfg cliparse.Config, hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{cfg: cfg, hub: hub}
}

// Negotiate handles GET/POST /negotiate
//
// Anonymous by design: anyone may subscribe to vote events. The
// response tells the client where to connect and carries a short-lived
// access token for the websocket endpoint.
func (h *RealtimeHandler) Negotiate(w http.ResponseWriter, r *http.Request) {
	token, err := auth.IssueConnectionToken(h.cfg)
	if err != nil {
		slog.Error("failed to issue connection token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to negotiate connection")
		return
	}

	scheme := "ws"
	if r.TLS != nil {
		scheme = "wss"
	}

	middleware.JSONResponse(w, http.StatusOK, models.NegotiateResponse{
		URL:         scheme + "://" + r.Host + WebsocketPath,
		AccessToken: token,
	})
}

// ServeWS handles GET /polls/ws
//
// Browsers can't set an Authorization header on websocket handshakes,
// so the connection token rides in the access_token query parameter.
func (h *RealtimeHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("access_token")
	if _, err := auth.VerifyToken(raw, h.cfg); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid connection token")
		return
	}

	if err := h.hub.Subscribe(w, r); err != nil {
		// Upgrade failure already wrote the response
		slog.Info("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	slog.Info("realtime subscriber connected", "remote", r.RemoteAddr)
}
