// Copyright (c) 2025 AyurAhaar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Seed inserts the default 10-question AyurAhaar catalog. Content authoring
// normally owns the question set; this seed exists so a fresh database serves
// assessments immediately.
func Seed(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for i, q := range defaultQuestions {
		id := uuid.NewString()
		_, err := tx.Exec(`
			INSERT INTO question (id, ordinal, prompt, category)
			VALUES ($1, $2, $3, $4)
		`, id, i+1, q.prompt, q.category)
		if err != nil {
			return fmt.Errorf("failed to seed question %d: %w", i+1, err)
		}

		for j, o := range q.options {
			_, err := tx.Exec(`
				INSERT INTO question_option (question_id, idx, label, vata, pitta, kapha)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, id, j, o.label, o.vata, o.pitta, o.kapha)
			if err != nil {
				return fmt.Errorf("failed to seed option %d of question %d: %w", j, i+1, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

type seedOption struct {
	label  string
	vata   int
	pitta  int
	kapha  int
}

type seedQuestion struct {
	prompt   string
	category string
	options  []seedOption
}

var defaultQuestions = []seedQuestion{
	{
		prompt:   "How would you describe your body build?",
		category: "body_build_weight",
		options: []seedOption{
			{label: "Thin, lean, and find it hard to gain weight", vata: 3},
			{label: "Medium build, gain/lose weight fairly easily", pitta: 3},
			{label: "Broad/stocky build, gain weight easily and slowly lose", kapha: 3},
		},
	},
	{
		prompt:   "How is your skin usually?",
		category: "skin_type",
		options: []seedOption{
			{label: "Dry, rough, cool", vata: 3},
			{label: "Warm, reddish, sometimes oily, prone to rashes", pitta: 3},
			{label: "Smooth, pale, soft, oily, cool", kapha: 3},
		},
	},
	{
		prompt:   "How would you describe your hair?",
		category: "hair",
		options: []seedOption{
			{label: "Dry, frizzy, thin", vata: 3},
			{label: "Straight, fine, prone to early greying or thinning", pitta: 3},
			{label: "Thick, wavy, oily, strong", kapha: 3},
		},
	},
	{
		prompt:   "Which describes you best?",
		category: "appetite_digestion",
		options: []seedOption{
			{label: "Variable appetite, sometimes hungry, sometimes not", vata: 3},
			{label: "Strong appetite, feel hungry quickly, can't skip meals", pitta: 3},
			{label: "Slow digestion, not very hungry, heavy after meals", kapha: 3},
		},
	},
	{
		prompt:   "How is your sleep usually?",
		category: "sleep",
		options: []seedOption{
			{label: "Light, disturbed, less hours", vata: 3},
			{label: "Medium, 6-8 hours, can wake up easily", pitta: 3},
			{label: "Heavy, long, find it hard to wake up", kapha: 3},
		},
	},
	{
		prompt:   "How do you feel in different weather?",
		category: "temperature_tolerance",
		options: []seedOption{
			{label: "Sensitive to cold, prefer warmth", vata: 3},
			{label: "Sensitive to heat, prefer cool climate", pitta: 3},
			{label: "Comfortable mostly, dislike dampness/humidity", kapha: 3},
		},
	},
	{
		prompt:   "How would you describe your energy level?",
		category: "energy_activity",
		options: []seedOption{
			{label: "Energetic in bursts, but tire quickly", vata: 3},
			{label: "Consistent, strong energy but can burn out", pitta: 3},
			{label: "Steady, long-lasting stamina, but move slowly", kapha: 3},
		},
	},
	{
		prompt:   "How do you usually react?",
		category: "mind_emotions",
		options: []seedOption{
			{label: "Anxious, worry easily, quick to change mood", vata: 3},
			{label: "Intense, focused, sometimes angry or impatient", pitta: 3},
			{label: "Calm, steady, forgiving, slow to anger", kapha: 3},
		},
	},
	{
		prompt:   "Which suits you best?",
		category: "memory_learning",
		options: []seedOption{
			{label: "Quick to learn but forget easily", vata: 3},
			{label: "Sharp memory, analytical", pitta: 3},
			{label: "Learn slowly but retain long-term", kapha: 3},
		},
	},
	{
		prompt:   "Which foods do you like naturally?",
		category: "food_preferences",
		options: []seedOption{
			{label: "Warm, oily, grounding foods", vata: 3},
			{label: "Cooling, light, less spicy foods", pitta: 3},
			{label: "Light, dry foods, spicy things to stimulate digestion", kapha: 3},
		},
	},
}
