// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/Abhinay2206/AyurAhaar-sub002/models"
)

// Policy holds the tunable classification constants. They are configuration,
// not ground truth: the dual-constitution cutoffs were never pinned down by
// reference data, so they are exposed here for tuning instead of being buried
// in the algorithm.
type Policy struct {
	// DualRatio declares a dual constitution when the second-ranked raw
	// score is at least this fraction of the primary's raw score.
	DualRatio float64

	// MinSeparation additionally requires the second-ranked raw score to
	// exceed the third-ranked by at least this much, so a three-way
	// near-tie does not read as "dual".
	MinSeparation int
}

// DefaultPolicy returns the shipped classification constants.
func DefaultPolicy() Policy {
	return Policy{DualRatio: 0.75, MinSeparation: 1}
}

// Classification is the engine's full view of a finished assessment:
// the three doshas ranked, the raw totals they were ranked by, and the
// normalized percentages.
type Classification struct {
	Ranked  [3]models.Dosha
	Raw     models.Scores
	Percent models.Percentages
	IsDual  bool
}

// Classify turns final raw totals into a Classification. It is total for any
// fully answered session against a well-formed catalog; the only failures are
// content defects (an axis with zero max possible, or totals that scored
// nothing anywhere), which are rejected rather than defaulted.
//
// Each axis is first scaled by its own maximum possible score, because the
// catalog does not weight all three axes equally. The scaled shares are then
// normalized to sum to 100, rounded, and the rounding remainder is handed to
// the largest shares first so the displayed percentages always sum to exactly
// 100 instead of 99 or 101.
func Classify(total, maxPossible models.Scores, p Policy) (Classification, error) {
	doshas := models.Doshas()

	for _, d := range doshas {
		if maxPossible.Axis(d) <= 0 {
			return Classification{}, fmt.Errorf("axis %s has max possible %d: %w", d, maxPossible.Axis(d), ErrZeroScale)
		}
	}

	// Per-axis shares, then normalized across axes.
	var shares [3]float64
	var sum float64
	for i, d := range doshas {
		shares[i] = float64(total.Axis(d)) / float64(maxPossible.Axis(d))
		sum += shares[i]
	}
	if sum == 0 {
		return Classification{}, fmt.Errorf("all raw totals are zero: %w", ErrZeroScale)
	}

	var exact [3]float64
	var rounded [3]int
	roundedSum := 0
	for i := range shares {
		exact[i] = 100 * shares[i] / sum
		rounded[i] = int(math.Round(exact[i]))
		roundedSum += rounded[i]
	}

	// Distribute the rounding remainder, largest exact share first.
	// Stable sort over the fixed dosha order keeps equal shares in
	// priority order (Vata > Pitta > Kapha).
	order := []int{0, 1, 2}
	sort.SliceStable(order, func(a, b int) bool {
		return exact[order[a]] > exact[order[b]]
	})
	for rem := 100 - roundedSum; rem != 0; {
		for _, i := range order {
			if rem == 0 {
				break
			}
			if rem > 0 {
				rounded[i]++
				rem--
			} else if rounded[i] > 0 {
				rounded[i]--
				rem++
			}
		}
	}

	// Rank by raw score descending; equal raw scores fall back to the
	// fixed priority order.
	rank := []int{0, 1, 2}
	sort.SliceStable(rank, func(a, b int) bool {
		return total.Axis(doshas[rank[a]]) > total.Axis(doshas[rank[b]])
	})

	ranked := [3]models.Dosha{doshas[rank[0]], doshas[rank[1]], doshas[rank[2]]}
	primRaw := total.Axis(ranked[0])
	secRaw := total.Axis(ranked[1])
	thirdRaw := total.Axis(ranked[2])

	isDual := float64(secRaw) >= p.DualRatio*float64(primRaw) &&
		secRaw-thirdRaw >= p.MinSeparation

	return Classification{
		Ranked: ranked,
		Raw:    total,
		Percent: models.Percentages{
			Vata:  rounded[0],
			Pitta: rounded[1],
			Kapha: rounded[2],
		},
		IsDual: isDual,
	}, nil
}
