// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"encoding/json"
	"fmt"

	"github.com/Abhinay2206/AyurAhaar-sub002/models"
)

// Project formats a Classification into the externally consumed result shape:
// canonical label casing, integer percentages, secondary present only for a
// dual constitution.
func Project(c Classification) models.PrakritiResult {
	r := models.PrakritiResult{
		Primary:     c.Ranked[0],
		IsDual:      c.IsDual,
		Percentages: c.Percent,
	}
	if c.IsDual {
		s := c.Ranked[1]
		r.Secondary = &s
	}
	return r
}

// EncodeResult serializes a result for storage and transport. Field order is
// fixed by the struct, so encoding the same result twice is byte-identical.
func EncodeResult(r models.PrakritiResult) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return b, nil
}

// DecodeResult is the inverse of EncodeResult, used when loading a completed
// session back out of storage.
func DecodeResult(b []byte) (*models.PrakritiResult, error) {
	var r models.PrakritiResult
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return &r, nil
}
