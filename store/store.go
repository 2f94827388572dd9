// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"

	"github.com/Abhinay2206/AyurAhaar-sub002/models"
)

var (
	// ErrNotFound means no session matched the lookup.
	ErrNotFound = errors.New("session not found")

	// ErrConflict means an optimistic-concurrency check failed: the
	// session ordinal moved between load and save. The caller surfaces
	// this as a stale answer; it is never retried internally.
	ErrConflict = errors.New("session was modified concurrently")
)

// Store persists assessment sessions. The engine itself never touches
// storage; handlers load a session, apply an engine transition, and save it
// back through this interface. Advance must provide at-most-one-succeeds
// semantics per ordinal so two racing submits can never both count.
type Store interface {
	// Create inserts a new in-progress session, superseding (removing)
	// any prior in-progress session for the same respondent. Completed
	// sessions are never touched.
	Create(s *models.Session) error

	// Get loads a session by ID, or ErrNotFound.
	Get(id string) (*models.Session, error)

	// Advance saves a session after one answer was applied, keyed on the
	// ordinal the session had when loaded (prevOrdinal). Returns
	// ErrConflict when that check fails. The answer audit record is
	// written in the same transaction; on completion the encoded result
	// and completion timestamp are persisted too.
	Advance(s *models.Session, prevOrdinal int, ans models.Answer) error

	// Answers returns a session's audit trail as ordinal -> option index.
	Answers(sessionID string) (map[int]int, error)

	// LatestCompleted returns the respondent's most recent completed
	// session, or ErrNotFound.
	LatestCompleted(respondentRef string) (*models.Session, error)

	// History returns the respondent's completed sessions, newest first.
	History(respondentRef string) ([]*models.Session, error)
}
