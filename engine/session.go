// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"time"

	"github.com/Abhinay2206/AyurAhaar-sub002/models"
)

// Catalog is the read-only question source the engine consults. It must be
// stable for the lifetime of any in-progress session; the concrete
// implementation lives in the catalog package.
type Catalog interface {
	// Len returns the number of questions.
	Len() int
	// Question returns the question at the given 1-based ordinal, or
	// ErrOutOfRange.
	Question(ordinal int) (models.Question, error)
	// MaxPossible returns, per axis, the sum over all questions of the
	// highest weight any option offers on that axis.
	MaxPossible() models.Scores
}

// Start creates a new session for the respondent: ordinal 1, zeroed scores,
// in progress. The caller allocates the identity; the respondent reference is
// opaque to the engine.
func Start(id, respondentRef string, now time.Time) *models.Session {
	return &models.Session{
		ID:            id,
		RespondentRef: respondentRef,
		Ordinal:       1,
		Status:        models.StatusInProgress,
		CreatedAt:     now,
	}
}

// CurrentQuestion returns the question the session is waiting on.
func CurrentQuestion(s *models.Session, cat Catalog) (models.Question, error) {
	if s.Status != models.StatusInProgress {
		return models.Question{}, ErrSessionClosed
	}
	return cat.Question(s.Ordinal)
}

// SubmitAnswer applies one answer to the session. Answers must arrive in
// strict catalog order: the submitted ordinal has to equal the session's
// current ordinal, which also rules out re-answering and makes a lost
// concurrent-submit race indistinguishable from any other stale answer.
//
// On success the chosen option's weights are folded into the totals, the
// ordinal advances, and the audit Answer is returned. When the answer was the
// last one, the session is classified, the projected result is attached, and
// the session transitions to completed with its completion timestamp set.
// A failed submit never mutates the session.
func SubmitAnswer(s *models.Session, cat Catalog, questionOrdinal, optionIndex int, p Policy, now time.Time) (models.Answer, *models.PrakritiResult, error) {
	if s.Status != models.StatusInProgress {
		return models.Answer{}, nil, ErrSessionClosed
	}
	if questionOrdinal != s.Ordinal {
		return models.Answer{}, nil, fmt.Errorf("submitted ordinal %d, session at %d: %w", questionOrdinal, s.Ordinal, ErrStaleAnswer)
	}

	q, err := cat.Question(s.Ordinal)
	if err != nil {
		return models.Answer{}, nil, err
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return models.Answer{}, nil, fmt.Errorf("option %d of question %d (has %d options): %w", optionIndex, q.Ordinal, len(q.Options), ErrInvalidOption)
	}

	weights := q.Options[optionIndex].Weights

	if s.Ordinal < cat.Len() {
		s.Scores = Fold(s.Scores, weights)
		s.Ordinal++
		return answerRecord(s.ID, questionOrdinal, optionIndex, weights, now), nil, nil
	}

	// Last question: classify before committing any mutation, so a
	// content defect leaves the session untouched.
	final := Fold(s.Scores, weights)
	c, err := Classify(final, cat.MaxPossible(), p)
	if err != nil {
		return models.Answer{}, nil, err
	}
	result := Project(c)

	s.Scores = final
	s.Ordinal++
	s.Status = models.StatusCompleted
	completedAt := now
	s.CompletedAt = &completedAt
	s.Result = &result

	return answerRecord(s.ID, questionOrdinal, optionIndex, weights, now), &result, nil
}

// Result returns the classification of a completed session.
func Result(s *models.Session) (*models.PrakritiResult, error) {
	if s.Status != models.StatusCompleted || s.Result == nil {
		return nil, ErrSessionNotComplete
	}
	return s.Result, nil
}

func answerRecord(sessionID string, ordinal, optionIndex int, weights models.Scores, now time.Time) models.Answer {
	return models.Answer{
		SessionID:   sessionID,
		Ordinal:     ordinal,
		OptionIndex: optionIndex,
		Weights:     weights,
		AnsweredAt:  now,
	}
}
