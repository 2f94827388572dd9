// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Abhinay2206/AyurAhaar-sub002/auth"
	"github.com/Abhinay2206/AyurAhaar-sub002/catalog"
	"github.com/Abhinay2206/AyurAhaar-sub002/cliparse"
	"github.com/Abhinay2206/AyurAhaar-sub002/engine"
	"github.com/Abhinay2206/AyurAhaar-sub002/middleware"
	"github.com/Abhinay2206/AyurAhaar-sub002/models"
	"github.com/Abhinay2206/AyurAhaar-sub002/store"
)

type AssessmentHandler struct {
	st     store.Store
	cat    *catalog.Catalog
	cfg    cliparse.Config
	policy engine.Policy
}

func NewAssessmentHandler(st store.Store, cat *catalog.Catalog, cfg cliparse.Config) *AssessmentHandler {
	return &AssessmentHandler{
		st:  st,
		cat: cat,
		cfg: cfg,
		policy: engine.Policy{
			DualRatio:     cfg.DualRatio,
			MinSeparation: cfg.DualMinSeparation,
		},
	}
}

// Start handles POST /assessments
// Creates a new session for the respondent, superseding any in-progress one.
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req models.StartAssessmentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "bad_request", "Invalid JSON")
		return
	}

	if req.RespondentRef == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "bad_request", "respondent_ref is required")
		return
	}

	session := engine.Start(uuid.NewString(), req.RespondentRef, time.Now())

	if err := h.st.Create(session); err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal", "Failed to start assessment")
		return
	}

	firstQuestion, err := h.cat.Question(1)
	if err != nil {
		slog.Error("failed to load first question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal", "Failed to start assessment")
		return
	}

	slog.Info("assessment started",
		"session_id", session.ID,
		"respondent", auth.HashRef(req.RespondentRef, h.cfg.SessionKeySalt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.StartAssessmentResponse{
		SessionID:      session.ID,
		SessionKey:     auth.GenerateSessionKey(session.ID, h.cfg.SessionKeySalt),
		FirstQuestion:  firstQuestion,
		TotalQuestions: h.cat.Len(),
	})
}

// SubmitAnswer handles POST /assessments/{id}/answers
func (h *AssessmentHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	session, ok := h.ownedSession(w, r)
	if !ok {
		return
	}

	var req models.SubmitAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "bad_request", "Invalid JSON")
		return
	}

	prevOrdinal := session.Ordinal
	answer, result, err := engine.SubmitAnswer(session, h.cat, req.QuestionOrdinal, req.OptionIndex, h.policy, time.Now())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if err := h.st.Advance(session, prevOrdinal, answer); err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeEngineError(w, err)
			return
		}
		slog.Error("failed to save session", "error", err, "session_id", session.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal", "Failed to save answer")
		return
	}

	completed := session.Ordinal - 1
	slog.Info("answer submitted",
		"session_id", session.ID,
		"ordinal", req.QuestionOrdinal,
		"completed", completed,
		"is_complete", result != nil,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitAnswerResponse{
		CurrentScores:      session.Scores,
		CompletedQuestions: completed,
		TotalQuestions:     h.cat.Len(),
		IsComplete:         result != nil,
		Result:             result,
	})
}

// Progress handles GET /assessments/{id}
func (h *AssessmentHandler) Progress(w http.ResponseWriter, r *http.Request) {
	session, ok := h.ownedSession(w, r)
	if !ok {
		return
	}

	answers, err := h.st.Answers(session.ID)
	if err != nil {
		slog.Error("failed to load answers", "error", err, "session_id", session.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal", "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProgressResponse{
		SessionID:          session.ID,
		Status:             session.Status,
		CompletedQuestions: len(answers),
		TotalQuestions:     h.cat.Len(),
		CurrentScores:      session.Scores,
		Answers:            answers,
		CompletedAt:        session.CompletedAt,
		Result:             session.Result,
	})
}

// CurrentQuestion handles GET /assessments/{id}/question
func (h *AssessmentHandler) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	session, ok := h.ownedSession(w, r)
	if !ok {
		return
	}

	q, err := engine.CurrentQuestion(session, h.cat)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, q)
}

// ownedSession resolves the {id} path value, checks the X-Session-Key header,
// and loads the session. It writes the error response itself when ok=false.
func (h *AssessmentHandler) ownedSession(w http.ResponseWriter, r *http.Request) (*models.Session, bool) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "bad_request", "session id is required")
		return nil, false
	}

	key := r.Header.Get("X-Session-Key")
	if err := auth.ValidateSessionKey(sessionID, key, h.cfg.SessionKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid_session_key", "Invalid session key")
		return nil, false
	}

	session, err := h.st.Get(sessionID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "not_found", "Session not found")
		return nil, false
	}
	if err != nil {
		slog.Error("failed to load session", "error", err, "session_id", sessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal", "Database error")
		return nil, false
	}

	return session, true
}
