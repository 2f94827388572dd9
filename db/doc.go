// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema.

Four tables: question and question_option hold the read-only catalog;
assessment holds one row per session; assessment_answer is the per-answer
audit trail. The schema is portable across PostgreSQL (lib/pq) and SQLite
(modernc.org/sqlite), which is why results are stored as a TEXT JSON payload
and timestamps are written by the application instead of NOW() defaults.

	if err := db.CreateSchema(dbConn); err != nil { ... }

CreateSchema is idempotent (IF NOT EXISTS throughout).
*/
package db
