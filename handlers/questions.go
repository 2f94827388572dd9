// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/Abhinay2206/AyurAhaar-sub002/catalog"
	"github.com/Abhinay2206/AyurAhaar-sub002/middleware"
	"github.com/Abhinay2206/AyurAhaar-sub002/models"
)

type QuestionHandler struct {
	cat *catalog.Catalog
}

func NewQuestionHandler(cat *catalog.Catalog) *QuestionHandler {
	return &QuestionHandler{cat: cat}
}

// ListQuestions handles GET /questions
// Returns the full ordered catalog. Option weights never leave the server;
// clients only see option text and its index to submit back.
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.QuestionListResponse{
		Questions:      h.cat.Questions(),
		TotalQuestions: h.cat.Len(),
	})
}
