// Package presets holds a static, read-only catalogue of named OCEAN
// personality profiles an agent can be switched to at runtime.
package presets

import "emotion-engine/internal/domain"

// Preset is one named personality profile with its rationale.
type Preset struct {
	ID          string
	Name        string
	Description string
	Rationale   string
	Personality domain.Personality
}

var catalogue = []Preset{
	{
		ID:          "balanced",
		Name:        "Balanced",
		Description: "Factory-default profile with no trait leaning strongly in any direction.",
		Rationale:   "Gives a neutral baseline and mid-range decay rates, useful as a control for comparing other presets.",
		Personality: domain.DefaultPersonality(),
	},
	{
		ID:          "mandela",
		Name:        "Mandela",
		Description: "Warm, steady, patient. High agreeableness and conscientiousness, low neuroticism.",
		Rationale:   "Produces a positive pleasure baseline and slow-decaying trust, modeling a grounded, forgiving temperament.",
		Personality: domain.Personality{
			Openness:          0.6,
			Conscientiousness: 0.7,
			Extraversion:      0.6,
			Agreeableness:     0.85,
			Neuroticism:       0.2,
		},
	},
	{
		ID:          "anxious_achiever",
		Name:        "Anxious Achiever",
		Description: "Driven and detail-oriented but prone to worry and rumination.",
		Rationale:   "High conscientiousness activates task_completion strongly; high neuroticism raises rumination probability and shortens bipolar half-lives.",
		Personality: domain.Personality{
			Openness:          0.5,
			Conscientiousness: 0.9,
			Extraversion:      0.4,
			Agreeableness:     0.5,
			Neuroticism:       0.8,
		},
	},
	{
		ID:          "curious_explorer",
		Name:        "Curious Explorer",
		Description: "High openness and extraversion, quick to seek novelty.",
		Rationale:   "Activates exploration and novelty_seeking goals, amplifying curious/excited/surprised stimuli.",
		Personality: domain.Personality{
			Openness:          0.9,
			Conscientiousness: 0.5,
			Extraversion: 0.8,
			Agreeableness:     0.5,
			Neuroticism:       0.3,
		},
	},
	{
		ID:          "stoic",
		Name:        "Stoic",
		Description: "Low neuroticism and moderate everything else; hard to rattle, slow to ruminate.",
		Rationale:   "Minimizes rumination ignition probability and lengthens emotion decay half-lives toward flat, even-keeled behavior.",
		Personality: domain.Personality{
			Openness:          0.4,
			Conscientiousness: 0.6,
			Extraversion:      0.3,
			Agreeableness:     0.5,
			Neuroticism:       0.05,
		},
	},
}

// All returns every preset in the catalogue, in a stable declared order.
func All() []Preset {
	out := make([]Preset, len(catalogue))
	copy(out, catalogue)
	return out
}

// Get looks up a preset by ID.
func Get(id string) (Preset, bool) {
	for _, p := range catalogue {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
