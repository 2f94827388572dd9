// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "github.com/Abhinay2206/AyurAhaar-sub002/models"

// Fold adds one option's weight contribution to the running totals.
// Component-wise integer addition, nothing else: no normalization happens
// here, so the running totals shown to a respondent mid-assessment are plain
// incrementing numbers. Weights are non-negative, so each component is
// monotonically non-decreasing across a session.
func Fold(current, weights models.Scores) models.Scores {
	return models.Scores{
		Vata:  current.Vata + weights.Vata,
		Pitta: current.Pitta + weights.Pitta,
		Kapha: current.Kapha + weights.Kapha,
	}
}
