// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog provides the immutable ordered question set.

The catalog is loaded from the database once at startup (seeding the default
10-question AyurAhaar set into an empty database), validated, and then shared
read-only by every session:

	cat, err := catalog.Load(dbConn)

Validation rejects non-contiguous ordinals, questions with fewer than two
options, negative weights, and any dosha axis that no question can score.
The per-axis maximum possible score is precomputed at build time and exposed
via MaxPossible for the classification engine.
*/
package catalog
