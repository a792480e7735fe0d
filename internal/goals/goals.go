// Package goals infers implicit behavioral goals from a personality
// profile and amplifies stimulus intensity when a label threatens or
// achieves one of the active goals.
package goals

import (
	"strings"

	"emotion-engine/internal/domain"
)

// Goal is one personality-activated behavioral goal: a name, the strength
// it's held with, and the label sets that threaten or achieve it.
type Goal struct {
	Name          string
	Strength      float64
	ThreatLabels  []string
	AchieveLabels []string
}

// definition is the static activation rule for one goal: which trait(s)
// must clear which threshold(s), and which labels threaten/achieve it.
type definition struct {
	name          string
	threatLabels  []string
	achieveLabels []string
	activation    func(p domain.Personality) (strength float64, active bool)
}

const activationThreshold = 0.6

var definitions = []definition{
	{
		name:          "task_completion",
		threatLabels:  []string{"frustrated", "anxious", "confused", "fatigued"},
		achieveLabels: []string{"happy", "relieved", "energized", "focused"},
		activation: func(p domain.Personality) (float64, bool) {
			return strengthAbove(p.Conscientiousness, activationThreshold)
		},
	},
	{
		name:          "exploration",
		threatLabels:  []string{"bored", "frustrated"},
		achieveLabels: []string{"curious", "excited", "surprised"},
		activation: func(p domain.Personality) (float64, bool) {
			return strengthAbove(p.Openness, activationThreshold)
		},
	},
	{
		name:          "social_harmony",
		threatLabels:  []string{"angry", "disgusted", "lonely"},
		achieveLabels: []string{"connected", "trusting", "happy", "calm"},
		activation: func(p domain.Personality) (float64, bool) {
			return strengthAbove(p.Agreeableness, activationThreshold)
		},
	},
	{
		name:          "self_regulation",
		threatLabels:  []string{"angry", "anxious"},
		achieveLabels: []string{"calm", "focused", "relieved"},
		activation: func(p domain.Personality) (float64, bool) {
			cStrength, cActive := strengthAbove(p.Conscientiousness, activationThreshold)
			nStrength, nActive := strengthBelow(p.Neuroticism, 0.4)
			if !cActive || !nActive {
				return 0, false
			}
			return minF(cStrength, nStrength), true
		},
	},
	{
		name:          "novelty_seeking",
		threatLabels:  []string{"bored", "fatigued"},
		achieveLabels: []string{"excited", "curious", "surprised", "energized"},
		activation: func(p domain.Personality) (float64, bool) {
			oStrength, oActive := strengthAbove(p.Openness, 0.7)
			eStrength, eActive := strengthAbove(p.Extraversion, 0.6)
			if !oActive || !eActive {
				return 0, false
			}
			return minF(oStrength, eStrength), true
		},
	},
}

// Infer returns the goals currently activated by p, each carrying its
// normalized strength in (0,1].
func Infer(p domain.Personality) []Goal {
	var out []Goal
	for _, d := range definitions {
		strength, active := d.activation(p)
		if !active {
			continue
		}
		out = append(out, Goal{
			Name:          d.name,
			Strength:      strength,
			ThreatLabels:  d.threatLabels,
			AchieveLabels: d.achieveLabels,
		})
	}
	return out
}

// Modulate computes the effective intensity for label given the active
// goals: the multiplier starts at 1.0, accumulates +0.3*strength for each
// goal the label threatens and +0.2*strength for each goal it achieves,
// and the effective intensity is min(1, intensity*multiplier).
func Modulate(label string, intensity float64, active []Goal) (effective, multiplier float64) {
	multiplier = 1.0
	l := strings.ToLower(strings.TrimSpace(label))
	for _, g := range active {
		if containsLabel(g.ThreatLabels, l) {
			multiplier += 0.3 * g.Strength
		}
		if containsLabel(g.AchieveLabels, l) {
			multiplier += 0.2 * g.Strength
		}
	}
	effective = intensity * multiplier
	if effective > 1 {
		effective = 1
	}
	if effective < 0 {
		effective = 0
	}
	return effective, multiplier
}

func containsLabel(labels []string, l string) bool {
	for _, x := range labels {
		if x == l {
			return true
		}
	}
	return false
}

// strengthAbove normalizes how far value clears threshold against the
// remaining distance to 1, clipped to [0,1]: (value-threshold)/(1-threshold).
func strengthAbove(value, threshold float64) (strength float64, active bool) {
	if value <= threshold {
		return 0, false
	}
	s := (value - threshold) / (1 - threshold)
	return clip01(s), true
}

// strengthBelow is the mirror of strengthAbove for "must be under ceiling"
// activation rules: (ceiling-value)/ceiling.
func strengthBelow(value, ceiling float64) (strength float64, active bool) {
	if value >= ceiling {
		return 0, false
	}
	s := (ceiling - value) / ceiling
	return clip01(s), true
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
