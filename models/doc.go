// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and the request/response shapes of
the Prakriti assessment API.

# Doshas

Dosha is a closed enum of exactly three values: Vata, Pitta, Kapha. The
declaration order is the fixed priority used for every tie-break in the
engine, so iteration over Doshas() is always deterministic.

# Scores and Percentages

Scores holds raw integer totals (or one option's weight contribution);
the engine only ever adds to it. Percentages is the normalized view computed
once at classification time and always sums to exactly 100.

# Sessions

Session is one assessment attempt:

	in_progress → completed

Ordinal is the 1-based position of the next unanswered question. The Result
field is populated exactly once, when the last answer arrives.
*/
package models
