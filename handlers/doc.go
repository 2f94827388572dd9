// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the Prakriti
assessment API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - QuestionHandler: read-only question catalog
  - AssessmentHandler: session lifecycle (start, submit, progress, question)
  - ResultsHandler: classification retrieval (result, current, history)

Handlers never compute anything themselves: they load a session from the
store, apply an engine transition, and save the outcome. The load → apply →
save shape keeps the optimistic-concurrency check (Advance keyed on the
prior ordinal) the single arbiter of racing submits.

# Assessment Flow

	POST /assessments                  → Start (returns session_key)
	GET  /assessments/{id}/question    → CurrentQuestion
	POST /assessments/{id}/answers     → SubmitAnswer (strict catalog order)
	GET  /assessments/{id}             → Progress
	GET  /assessments/{id}/result      → GetResult (completed sessions only)

Session operations require the X-Session-Key header issued by Start.

# Respondent views

	GET /respondents/{ref}/prakriti → GetCurrent (latest completed result)
	GET /respondents/{ref}/history  → GetHistory (audit of past results)

# Errors

writeEngineError maps the engine's sentinel errors onto HTTP statuses; every
error body carries a stable code (invalid_option, stale_answer,
session_closed, session_not_complete, ...) so clients dispatch without
string matching.
*/
package handlers
