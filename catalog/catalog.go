// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Abhinay2206/AyurAhaar-sub002/engine"
	"github.com/Abhinay2206/AyurAhaar-sub002/models"
)

// Catalog is the immutable ordered question set. It is built once at startup,
// validated, and shared read-only by every session; answer weights must not
// change while any session is in progress.
type Catalog struct {
	questions []models.Question
	max       models.Scores
}

// Load reads the catalog from the database, seeding the default AyurAhaar
// question set first when the question table is empty.
func Load(db *sql.DB) (*Catalog, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM question`).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	if count == 0 {
		if err := Seed(db); err != nil {
			return nil, err
		}
	}

	questions, err := loadQuestions(db)
	if err != nil {
		return nil, err
	}
	return New(questions)
}

// New builds a validated catalog from an ordered question list. It rejects
// gaps in the ordinal sequence, questions with fewer than two options,
// negative weights, and any axis no question can score - all content defects
// that would corrupt every classification, surfaced at startup instead.
func New(questions []models.Question) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, errors.New("catalog has no questions")
	}

	var max models.Scores
	for i, q := range questions {
		if q.Ordinal != i+1 {
			return nil, fmt.Errorf("question %q has ordinal %d, want %d (ordinals must be contiguous from 1)", q.ID, q.Ordinal, i+1)
		}
		if len(q.Options) < 2 {
			return nil, fmt.Errorf("question %d has %d options, need at least 2", q.Ordinal, len(q.Options))
		}

		var best models.Scores
		for j, o := range q.Options {
			if o.Index != j {
				return nil, fmt.Errorf("question %d option at position %d carries index %d", q.Ordinal, j, o.Index)
			}
			w := o.Weights
			if w.Vata < 0 || w.Pitta < 0 || w.Kapha < 0 {
				return nil, fmt.Errorf("question %d option %d has a negative weight", q.Ordinal, j)
			}
			best.Vata = maxInt(best.Vata, w.Vata)
			best.Pitta = maxInt(best.Pitta, w.Pitta)
			best.Kapha = maxInt(best.Kapha, w.Kapha)
		}
		max = engine.Fold(max, best)
	}

	for _, d := range models.Doshas() {
		if max.Axis(d) == 0 {
			return nil, fmt.Errorf("no question scores axis %s: %w", d, engine.ErrZeroScale)
		}
	}

	return &Catalog{questions: questions, max: max}, nil
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Question returns the question at the given 1-based ordinal.
func (c *Catalog) Question(ordinal int) (models.Question, error) {
	if ordinal < 1 || ordinal > len(c.questions) {
		return models.Question{}, fmt.Errorf("ordinal %d of %d: %w", ordinal, len(c.questions), engine.ErrOutOfRange)
	}
	return c.questions[ordinal-1], nil
}

// Questions returns the full ordered list. Callers must treat it as
// read-only.
func (c *Catalog) Questions() []models.Question {
	return c.questions
}

// MaxPossible returns, per axis, the sum over all questions of the highest
// weight any option offers on that axis. Precomputed at build time.
func (c *Catalog) MaxPossible() models.Scores {
	return c.max
}

func loadQuestions(db *sql.DB) ([]models.Question, error) {
	rows, err := db.Query(`
		SELECT id, ordinal, prompt, category
		FROM question
		ORDER BY ordinal
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	byID := make(map[string]int)
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Ordinal, &q.Text, &q.Category); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		byID[q.ID] = len(questions)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	optRows, err := db.Query(`
		SELECT question_id, idx, label, vata, pitta, kapha
		FROM question_option
		ORDER BY question_id, idx
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer optRows.Close()

	for optRows.Next() {
		var qID string
		var o models.Option
		if err := optRows.Scan(&qID, &o.Index, &o.Text, &o.Weights.Vata, &o.Weights.Pitta, &o.Weights.Kapha); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		i, ok := byID[qID]
		if !ok {
			return nil, fmt.Errorf("option references unknown question %q", qID)
		}
		questions[i].Options = append(questions[i].Options, o)
	}
	if err := optRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	return questions, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
