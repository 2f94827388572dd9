// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the AyurAhaar Prakriti assessment
API server.

The service walks a respondent through a fixed, ordered set of
multiple-choice questions, accumulates per-dosha weights (Vata / Pitta /
Kapha) from each answer, and classifies the respondent into a single or dual
constitution with percentages that always sum to exactly 100.

# Starting the Server

The server reads configuration from environment variables or CLI flags:

	DATABASE_URL=prakriti.db SESSION_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 5000 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): Postgres connection string or SQLite path
  - SESSION_KEY_SALT (-session-salt): Secret for session key HMAC

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DUAL_RATIO, DUAL_MIN_SEPARATION: classification policy knobs

# Architecture

The server uses a handler-based architecture with dependency injection:

  - engine: the assessment core - session state machine, scoring
    accumulator, classification, result projection (pure, no I/O)
  - catalog: immutable validated question set with per-axis maxima
  - store: session persistence with optimistic concurrency
  - handlers: HTTP request handlers (questions, assessments, results)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and request/response types
  - auth: session ownership keys
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
