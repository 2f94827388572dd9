// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine implements the Prakriti assessment core: the session state
machine, the scoring accumulator, the classification rule, and the result
projection. Everything here is pure computation over values (no I/O, no
package-level state), so the same inputs always produce the same
classification.

# Session lifecycle

	Start → SubmitAnswer (×N, strict catalog order) → completed

SubmitAnswer enforces the order invariant (ErrStaleAnswer), option bounds
(ErrInvalidOption), and terminal status (ErrSessionClosed). The final submit
runs classification and attaches the projected result to the session.

# Classification

	c, err := engine.Classify(totals, catalog.MaxPossible(), engine.DefaultPolicy())
	result := engine.Project(c)

Percentages are per-axis ratios normalized to sum to exactly 100, with the
rounding remainder given to the largest shares first. Ranking is by raw
score descending with the fixed Vata > Pitta > Kapha tie-break. The dual
constitution cutoffs (Policy) are configurable defaults, not ground truth.

# Errors

All failures are sentinel errors; Code maps them to the stable kinds the API
exposes to clients.
*/
package engine
