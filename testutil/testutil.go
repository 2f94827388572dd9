// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/Abhinay2206/AyurAhaar-sub002/catalog"
	"github.com/Abhinay2206/AyurAhaar-sub002/cliparse"
	"github.com/Abhinay2206/AyurAhaar-sub002/db"
	"github.com/Abhinay2206/AyurAhaar-sub002/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the in-memory database alive; extra pool
	// connections would each see their own empty database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              5000,
		DatabaseURL:       ":memory:",
		DatabaseType:      "sqlite",
		SessionKeySalt:    "test-session-salt",
		DualRatio:         cliparse.DefaultDualRatio,
		DualMinSeparation: cliparse.DefaultDualMinSeparation,
	}
}

// LoadTestCatalog seeds the default AyurAhaar questions into the database
// and returns the loaded catalog.
func LoadTestCatalog(t *testing.T, conn *sql.DB) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.Load(conn)
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	return cat
}

// ThreeQuestionCatalog builds the small reference catalog used across engine
// and handler tests: three questions, each offering option 0 = {vata: 2}
// against option 1 = {pitta: 1, kapha: 1}, so the per-axis maxima are
// vata 6, pitta 3, kapha 3.
func ThreeQuestionCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	questions := make([]models.Question, 3)
	for i := range questions {
		questions[i] = models.Question{
			ID:       fmt.Sprintf("q%d", i+1),
			Ordinal:  i + 1,
			Text:     fmt.Sprintf("Test question %d", i+1),
			Category: "test",
			Options: []models.Option{
				{Index: 0, Text: "Airy", Weights: models.Scores{Vata: 2}},
				{Index: 1, Text: "Grounded", Weights: models.Scores{Pitta: 1, Kapha: 1}},
			},
		}
	}

	cat, err := catalog.New(questions)
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return cat
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
