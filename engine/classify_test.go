// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"testing"

	"github.com/Abhinay2206/AyurAhaar-sub002/models"
)

func percentSum(p models.Percentages) int {
	return p.Vata + p.Pitta + p.Kapha
}

func TestClassifyPercentagesAlwaysSumTo100(t *testing.T) {
	tests := []struct {
		name  string
		total models.Scores
		max   models.Scores
	}{
		{"all one axis", models.Scores{Vata: 6}, models.Scores{Vata: 6, Pitta: 3, Kapha: 3}},
		{"uneven maxima", models.Scores{Vata: 4, Pitta: 1, Kapha: 1}, models.Scores{Vata: 6, Pitta: 3, Kapha: 3}},
		{"even thirds", models.Scores{Vata: 1, Pitta: 1, Kapha: 1}, models.Scores{Vata: 3, Pitta: 3, Kapha: 3}},
		{"mixed", models.Scores{Vata: 7, Pitta: 13, Kapha: 5}, models.Scores{Vata: 30, Pitta: 30, Kapha: 30}},
		{"single point", models.Scores{Kapha: 1}, models.Scores{Vata: 9, Pitta: 9, Kapha: 9}},
		{"maxed out", models.Scores{Vata: 30, Pitta: 30, Kapha: 30}, models.Scores{Vata: 30, Pitta: 30, Kapha: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Classify(tt.total, tt.max, DefaultPolicy())
			if err != nil {
				t.Fatalf("Classify failed: %v", err)
			}
			if got := percentSum(c.Percent); got != 100 {
				t.Errorf("percentages sum to %d, want exactly 100 (%+v)", got, c.Percent)
			}
			for _, d := range models.Doshas() {
				if c.Percent.Axis(d) < 0 {
					t.Errorf("axis %s has negative percentage %d", d, c.Percent.Axis(d))
				}
			}
		})
	}
}

func TestClassifyEndToEndScenario(t *testing.T) {
	// Catalog of 3 questions, each {vata:2} vs {pitta:1,kapha:1}; all three
	// answers pick the first option.
	max := models.Scores{Vata: 6, Pitta: 3, Kapha: 3}

	c, err := Classify(models.Scores{Vata: 6}, max, DefaultPolicy())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if c.Ranked[0] != models.Vata {
		t.Errorf("primary = %s, want Vata", c.Ranked[0])
	}
	if c.IsDual {
		t.Error("expected single constitution")
	}
	want := models.Percentages{Vata: 100, Pitta: 0, Kapha: 0}
	if c.Percent != want {
		t.Errorf("percentages = %+v, want %+v", c.Percent, want)
	}
}

func TestClassifyDualScenario(t *testing.T) {
	// Same catalog, first option twice and second option once: raw totals
	// {4,1,1}. Exact shares are 2/3, 1/3, 1/3 which normalize to 50/25/25.
	max := models.Scores{Vata: 6, Pitta: 3, Kapha: 3}

	c, err := Classify(models.Scores{Vata: 4, Pitta: 1, Kapha: 1}, max, DefaultPolicy())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if c.Ranked[0] != models.Vata {
		t.Errorf("primary = %s, want Vata", c.Ranked[0])
	}
	want := models.Percentages{Vata: 50, Pitta: 25, Kapha: 25}
	if c.Percent != want {
		t.Errorf("percentages = %+v, want %+v", c.Percent, want)
	}
	// Secondary raw 1 is far below 0.75*4, and pitta/kapha are not
	// separated at all, so both dual conditions fail.
	if c.IsDual {
		t.Error("expected single constitution")
	}
}

func TestClassifyTieBreakIsDeterministic(t *testing.T) {
	max := models.Scores{Vata: 6, Pitta: 6, Kapha: 6}

	// Equal Vata and Pitta raw scores: priority order wins first place.
	c, err := Classify(models.Scores{Vata: 4, Pitta: 4, Kapha: 1}, max, DefaultPolicy())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if c.Ranked[0] != models.Vata {
		t.Errorf("primary = %s, want Vata on a Vata/Pitta tie", c.Ranked[0])
	}
	if c.Ranked[1] != models.Pitta {
		t.Errorf("secondary rank = %s, want Pitta", c.Ranked[1])
	}

	// Same for a Pitta/Kapha tie below first place.
	c, err = Classify(models.Scores{Vata: 1, Pitta: 4, Kapha: 4}, max, DefaultPolicy())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if c.Ranked[0] != models.Pitta {
		t.Errorf("primary = %s, want Pitta on a Pitta/Kapha tie", c.Ranked[0])
	}
	if c.Ranked[1] != models.Kapha {
		t.Errorf("second rank = %s, want Kapha", c.Ranked[1])
	}
}

func TestClassifyDualThresholdBoundary(t *testing.T) {
	max := models.Scores{Vata: 6, Pitta: 6, Kapha: 6}
	policy := Policy{DualRatio: 0.75, MinSeparation: 1}

	// Secondary exactly at the ratio threshold: 3 == 0.75 * 4.
	c, err := Classify(models.Scores{Vata: 4, Pitta: 3, Kapha: 1}, max, policy)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if !c.IsDual {
		t.Error("expected dual constitution exactly at the ratio threshold")
	}

	// One unit below the threshold.
	c, err = Classify(models.Scores{Vata: 4, Pitta: 2, Kapha: 1}, max, policy)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if c.IsDual {
		t.Error("expected single constitution one unit below the ratio threshold")
	}

	// Ratio satisfied but no separation from third place: a three-way
	// near-tie must not read as dual.
	c, err = Classify(models.Scores{Vata: 4, Pitta: 4, Kapha: 4}, max, policy)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if c.IsDual {
		t.Error("expected single constitution for a three-way tie")
	}
}

func TestClassifyRoundingRemainder(t *testing.T) {
	// Exact thirds round to 33+33+33 = 99; the missing point goes to the
	// first axis in priority order since all shares are equal.
	c, err := Classify(models.Scores{Vata: 1, Pitta: 1, Kapha: 1}, models.Scores{Vata: 3, Pitta: 3, Kapha: 3}, DefaultPolicy())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	want := models.Percentages{Vata: 34, Pitta: 33, Kapha: 33}
	if c.Percent != want {
		t.Errorf("percentages = %+v, want %+v", c.Percent, want)
	}

	// Exact shares 35.71/35.71/28.57 round to 36+36+29 = 101; the excess
	// comes off the largest share first (Vata, by priority among the
	// equal pair).
	c, err = Classify(models.Scores{Vata: 5, Pitta: 5, Kapha: 4}, models.Scores{Vata: 14, Pitta: 14, Kapha: 14}, DefaultPolicy())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	want = models.Percentages{Vata: 35, Pitta: 36, Kapha: 29}
	if c.Percent != want {
		t.Errorf("percentages = %+v, want %+v", c.Percent, want)
	}
}

func TestClassifyRejectsZeroScale(t *testing.T) {
	// An axis no question can score is a content defect.
	_, err := Classify(models.Scores{Vata: 6}, models.Scores{Vata: 6, Pitta: 0, Kapha: 3}, DefaultPolicy())
	if !errors.Is(err, ErrZeroScale) {
		t.Errorf("zero max possible: got %v, want ErrZeroScale", err)
	}

	// So are totals that scored nothing anywhere.
	_, err = Classify(models.Scores{}, models.Scores{Vata: 6, Pitta: 3, Kapha: 3}, DefaultPolicy())
	if !errors.Is(err, ErrZeroScale) {
		t.Errorf("all-zero totals: got %v, want ErrZeroScale", err)
	}
}
