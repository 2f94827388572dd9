// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Abhinay2206/AyurAhaar-sub002/auth"
	"github.com/Abhinay2206/AyurAhaar-sub002/cliparse"
	"github.com/Abhinay2206/AyurAhaar-sub002/engine"
	"github.com/Abhinay2206/AyurAhaar-sub002/middleware"
	"github.com/Abhinay2206/AyurAhaar-sub002/models"
	"github.com/Abhinay2206/AyurAhaar-sub002/store"
)

type ResultsHandler struct {
	st  store.Store
	cfg cliparse.Config
}

func NewResultsHandler(st store.Store, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{st: st, cfg: cfg}
}

// GetResult handles GET /assessments/{id}/result
// Returns the classification of a completed session; conflict before that.
func (h *ResultsHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "bad_request", "session id is required")
		return
	}

	key := r.Header.Get("X-Session-Key")
	if err := auth.ValidateSessionKey(sessionID, key, h.cfg.SessionKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid_session_key", "Invalid session key")
		return
	}

	session, err := h.st.Get(sessionID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "not_found", "Session not found")
		return
	}
	if err != nil {
		slog.Error("failed to load session", "error", err, "session_id", sessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal", "Database error")
		return
	}

	result, err := engine.Result(session)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// GetCurrent handles GET /respondents/{ref}/prakriti
// Returns the respondent's latest completed classification, if any.
func (h *ResultsHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("ref")
	if ref == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "bad_request", "respondent ref is required")
		return
	}

	session, err := h.st.LatestCompleted(ref)
	if errors.Is(err, store.ErrNotFound) {
		middleware.JSONResponse(w, http.StatusOK, models.CurrentPrakritiResponse{
			PrakritiCompleted: false,
		})
		return
	}
	if err != nil {
		slog.Error("failed to load latest assessment", "error", err,
			"respondent", auth.HashRef(ref, h.cfg.SessionKeySalt))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal", "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CurrentPrakritiResponse{
		PrakritiCompleted: true,
		SessionID:         session.ID,
		CompletedAt:       session.CompletedAt,
		Result:            session.Result,
	})
}

// GetHistory handles GET /respondents/{ref}/history
// Completed assessments, newest first - the audit view of past results.
func (h *ResultsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("ref")
	if ref == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "bad_request", "respondent ref is required")
		return
	}

	sessions, err := h.st.History(ref)
	if err != nil {
		slog.Error("failed to load history", "error", err,
			"respondent", auth.HashRef(ref, h.cfg.SessionKeySalt))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal", "Database error")
		return
	}

	entries := make([]models.HistoryEntry, 0, len(sessions))
	for _, s := range sessions {
		if s.Result == nil || s.CompletedAt == nil {
			// Completed sessions always carry both; skip anything else
			// rather than return a half-formed entry.
			slog.Warn("completed session missing result", "session_id", s.ID)
			continue
		}
		entries = append(entries, models.HistoryEntry{
			SessionID:   s.ID,
			CompletedAt: *s.CompletedAt,
			TotalScores: s.Scores,
			Result:      *s.Result,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{
		RespondentRef: ref,
		Assessments:   entries,
	})
}
