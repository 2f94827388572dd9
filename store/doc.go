// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists assessment sessions.

Store is a small interface so the engine stays free of I/O and handlers stay
testable; SQLStore is the database/sql implementation shared by PostgreSQL
and SQLite.

# Optimistic concurrency

Advance is keyed on the ordinal the session had when it was loaded:

	UPDATE assessment SET ... WHERE id = $id AND ordinal = $prev

If two submits race on the same session, exactly one UPDATE matches; the
loser gets ErrConflict and the handler reports a stale answer. Scores are
therefore never double-counted, with no locks and no retries.

The per-answer audit row is written in the same transaction as the advance,
so the trail can never drift from the session's totals.
*/
package store
