// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "errors"

var (
	// ErrInvalidOption means the submitted option index is outside the
	// option list of the question being answered.
	ErrInvalidOption = errors.New("option index out of range for question")

	// ErrStaleAnswer means the submitted ordinal is not the session's
	// current ordinal: answering out of order, re-answering a past
	// question, or losing a concurrent-submit race.
	ErrStaleAnswer = errors.New("answer does not match the session's current question")

	// ErrSessionClosed means the session is no longer in progress.
	ErrSessionClosed = errors.New("session is not in progress")

	// ErrSessionNotComplete means a result was requested before the last
	// question was answered.
	ErrSessionNotComplete = errors.New("session is not completed")

	// ErrOutOfRange means an ordinal exceeds the catalog length.
	ErrOutOfRange = errors.New("ordinal exceeds catalog length")

	// ErrZeroScale means classification was attempted against a catalog
	// where some axis can never score, or a session that scored nothing
	// at all. Either way the percentages would be undefined; this is a
	// content defect, never silently defaulted.
	ErrZeroScale = errors.New("classification scale is zero")
)

// Code maps an engine error to its stable machine-readable kind, so API
// clients can distinguish failures without string matching.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidOption):
		return "invalid_option"
	case errors.Is(err, ErrStaleAnswer):
		return "stale_answer"
	case errors.Is(err, ErrSessionClosed):
		return "session_closed"
	case errors.Is(err, ErrSessionNotComplete):
		return "session_not_complete"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrZeroScale):
		return "zero_scale"
	default:
		return "internal"
	}
}
