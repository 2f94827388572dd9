// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The SQL is deliberately
// restricted to types both lib/pq and modernc sqlite accept; timestamps are
// always written explicitly by the application rather than defaulted.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Question catalog (read-only after seeding)
CREATE TABLE IF NOT EXISTS question (
    id TEXT PRIMARY KEY,
    ordinal INTEGER NOT NULL UNIQUE,
    prompt TEXT NOT NULL,
    category TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS question_option (
    question_id TEXT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    idx INTEGER NOT NULL,
    label TEXT NOT NULL,
    vata INTEGER NOT NULL CHECK (vata >= 0),
    pitta INTEGER NOT NULL CHECK (pitta >= 0),
    kapha INTEGER NOT NULL CHECK (kapha >= 0),
    PRIMARY KEY (question_id, idx)
);

CREATE INDEX IF NOT EXISTS idx_question_option_question ON question_option(question_id);

-- Assessment sessions
CREATE TABLE IF NOT EXISTS assessment (
    id TEXT PRIMARY KEY,
    respondent_ref TEXT NOT NULL,
    ordinal INTEGER NOT NULL DEFAULT 1,
    vata INTEGER NOT NULL DEFAULT 0,
    pitta INTEGER NOT NULL DEFAULT 0,
    kapha INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'in_progress' CHECK (status IN ('in_progress', 'completed')),
    created_at TIMESTAMP NOT NULL,
    completed_at TIMESTAMP,
    result TEXT
);

CREATE INDEX IF NOT EXISTS idx_assessment_respondent ON assessment(respondent_ref);
CREATE INDEX IF NOT EXISTS idx_assessment_respondent_status ON assessment(respondent_ref, status);

-- Per-answer audit trail
CREATE TABLE IF NOT EXISTS assessment_answer (
    assessment_id TEXT NOT NULL REFERENCES assessment(id) ON DELETE CASCADE,
    ordinal INTEGER NOT NULL,
    option_index INTEGER NOT NULL,
    vata INTEGER NOT NULL,
    pitta INTEGER NOT NULL,
    kapha INTEGER NOT NULL,
    answered_at TIMESTAMP NOT NULL,
    PRIMARY KEY (assessment_id, ordinal)
);
`
