// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/Abhinay2206/AyurAhaar-sub002/engine"
	"github.com/Abhinay2206/AyurAhaar-sub002/models"
)

// SQLStore is the Store implementation over database/sql. It works against
// both PostgreSQL and SQLite; optimistic concurrency rides on a plain
// UPDATE ... WHERE ordinal = $prev row-count check, no driver specifics.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (st *SQLStore) Create(s *models.Session) error {
	tx, err := st.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// One in-progress session per respondent: a new start invalidates any
	// prior attempt rather than merging with it.
	_, err = tx.Exec(`
		DELETE FROM assessment
		WHERE respondent_ref = $1 AND status = $2
	`, s.RespondentRef, models.StatusInProgress)
	if err != nil {
		return fmt.Errorf("failed to supersede prior session: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO assessment (id, respondent_ref, ordinal, vata, pitta, kapha, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, s.ID, s.RespondentRef, s.Ordinal, s.Scores.Vata, s.Scores.Pitta, s.Scores.Kapha, s.Status, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session create: %w", err)
	}
	return nil
}

func (st *SQLStore) Get(id string) (*models.Session, error) {
	row := st.db.QueryRow(`
		SELECT id, respondent_ref, ordinal, vata, pitta, kapha, status, created_at, completed_at, result
		FROM assessment
		WHERE id = $1
	`, id)
	return scanSession(row)
}

func (st *SQLStore) Advance(s *models.Session, prevOrdinal int, ans models.Answer) error {
	var resultJSON *string
	if s.Result != nil {
		b, err := engine.EncodeResult(*s.Result)
		if err != nil {
			return err
		}
		enc := string(b)
		resultJSON = &enc
	}

	tx, err := st.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE assessment
		SET ordinal = $1, vata = $2, pitta = $3, kapha = $4, status = $5, completed_at = $6, result = $7
		WHERE id = $8 AND ordinal = $9 AND status = $10
	`, s.Ordinal, s.Scores.Vata, s.Scores.Pitta, s.Scores.Kapha, s.Status, s.CompletedAt, resultJSON,
		s.ID, prevOrdinal, models.StatusInProgress)
	if err != nil {
		return fmt.Errorf("failed to advance session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrConflict
	}

	_, err = tx.Exec(`
		INSERT INTO assessment_answer (assessment_id, ordinal, option_index, vata, pitta, kapha, answered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, ans.SessionID, ans.Ordinal, ans.OptionIndex, ans.Weights.Vata, ans.Weights.Pitta, ans.Weights.Kapha, ans.AnsweredAt)
	if err != nil {
		return fmt.Errorf("failed to record answer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session advance: %w", err)
	}
	return nil
}

func (st *SQLStore) LatestCompleted(respondentRef string) (*models.Session, error) {
	row := st.db.QueryRow(`
		SELECT id, respondent_ref, ordinal, vata, pitta, kapha, status, created_at, completed_at, result
		FROM assessment
		WHERE respondent_ref = $1 AND status = $2
		ORDER BY completed_at DESC
		LIMIT 1
	`, respondentRef, models.StatusCompleted)
	return scanSession(row)
}

func (st *SQLStore) History(respondentRef string) ([]*models.Session, error) {
	rows, err := st.db.Query(`
		SELECT id, respondent_ref, ordinal, vata, pitta, kapha, status, created_at, completed_at, result
		FROM assessment
		WHERE respondent_ref = $1 AND status = $2
		ORDER BY completed_at DESC
	`, respondentRef, models.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return sessions, nil
}

// Answers returns the audit trail for a session as ordinal -> option index.
func (st *SQLStore) Answers(sessionID string) (map[int]int, error) {
	rows, err := st.db.Query(`
		SELECT ordinal, option_index
		FROM assessment_answer
		WHERE assessment_id = $1
		ORDER BY ordinal
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	answers := make(map[int]int)
	for rows.Next() {
		var ordinal, optionIndex int
		if err := rows.Scan(&ordinal, &optionIndex); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers[ordinal] = optionIndex
	}
	return answers, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*models.Session, error) {
	var s models.Session
	var completedAt sql.NullTime
	var resultJSON sql.NullString

	err := row.Scan(&s.ID, &s.RespondentRef, &s.Ordinal,
		&s.Scores.Vata, &s.Scores.Pitta, &s.Scores.Kapha,
		&s.Status, &s.CreatedAt, &completedAt, &resultJSON)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	if completedAt.Valid {
		t := completedAt.Time
		s.CompletedAt = &t
	}
	if resultJSON.Valid {
		r, err := engine.DecodeResult([]byte(resultJSON.String))
		if err != nil {
			return nil, err
		}
		s.Result = r
	}
	return &s, nil
}
