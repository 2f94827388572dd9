// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Abhinay2206/AyurAhaar-sub002/catalog"
	"github.com/Abhinay2206/AyurAhaar-sub002/cliparse"
	"github.com/Abhinay2206/AyurAhaar-sub002/handlers"
	"github.com/Abhinay2206/AyurAhaar-sub002/middleware"
	"github.com/Abhinay2206/AyurAhaar-sub002/store"
)

func NewRouter(st store.Store, cat *catalog.Catalog, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(cat)
	assessmentHandler := handlers.NewAssessmentHandler(st, cat, cfg)
	resultsHandler := handlers.NewResultsHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Question catalog (read-only)
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.ListQuestions))

	// Assessment lifecycle (session-key protected)
	mux.HandleFunc("POST /assessments", middleware.WithLogging(assessmentHandler.Start))
	mux.HandleFunc("GET /assessments/{id}", middleware.WithLogging(assessmentHandler.Progress))
	mux.HandleFunc("GET /assessments/{id}/question", middleware.WithLogging(assessmentHandler.CurrentQuestion))
	mux.HandleFunc("POST /assessments/{id}/answers", middleware.WithLogging(assessmentHandler.SubmitAnswer))
	mux.HandleFunc("GET /assessments/{id}/result", middleware.WithLogging(resultsHandler.GetResult))

	// Respondent views
	mux.HandleFunc("GET /respondents/{ref}/prakriti", middleware.WithLogging(resultsHandler.GetCurrent))
	mux.HandleFunc("GET /respondents/{ref}/history", middleware.WithLogging(resultsHandler.GetHistory))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ayurahaar prakriti API v1"))
	})

	return mux
}
