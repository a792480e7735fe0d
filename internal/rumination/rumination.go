// Package rumination implements the ignition, staged decay, and
// re-application of lingering negative stimuli: a high-intensity negative
// event doesn't simply decay away, it can "stick" and keep nudging the
// state at a diminishing strength across several update cycles.
package rumination

import (
	"emotion-engine/internal/domain"
	"emotion-engine/internal/mapping"
)

// DefaultIntensityThreshold is the minimum stimulus intensity eligible to
// ignite rumination.
const DefaultIntensityThreshold = 0.5

// DefaultMaxStages bounds how many times a rumination entry re-applies
// its effect before it's considered expired.
const DefaultMaxStages = 4

// DefaultStageDecayFactor is the per-stage multiplicative falloff applied
// to a rumination entry's intensity.
const DefaultStageDecayFactor = 0.8

// negativeEmotions names the basic-emotion keys whose presence in a
// label's mapped effect marks the label as rumination-eligible.
var negativeEmotions = map[string]struct{}{
	"sadness": {}, "anger": {}, "fear": {}, "disgust": {},
}

// Probability derives the chance that an eligible stimulus ignites
// rumination from the personality's neuroticism: p = 0.4 + 0.6*N, clamped
// to [0,1]. Higher neuroticism means a stronger tendency to dwell.
func Probability(p domain.Personality) float64 {
	v := 0.4 + 0.6*p.Neuroticism
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ShouldIgnite applies the deterministic ignition rule: never at
// probability <= 0, whenever intensity exceeds threshold at probability
// >= 1, and otherwise whenever intensity exceeds threshold by a margin
// that shrinks as probability rises (so a more rumination-prone
// personality ignites closer to the bare threshold).
func ShouldIgnite(intensity, threshold, probability float64) bool {
	if probability <= 0 {
		return false
	}
	if probability >= 1 {
		return intensity > threshold
	}
	return intensity > threshold+0.3*(1-probability)
}

// IsEligible reports whether a stimulus's label and intensity clear the
// bar for rumination ignition at all, independent of ShouldIgnite's
// probability-dependent margin. A label is eligible when its mapped effect raises a
// negative basic emotion (sadness, anger, fear, disgust).
func IsEligible(label string, intensity, threshold float64) bool {
	if intensity < threshold {
		return false
	}
	eff, ok := mapping.Resolve(label, nil)
	if !ok {
		return false
	}
	for emotion, delta := range eff.Emotions {
		if delta <= 0 {
			continue
		}
		if _, negative := negativeEmotions[emotion]; negative {
			return true
		}
	}
	return false
}

// Ignite creates a new rumination entry in stage 0 at the stimulus's
// original intensity.
func Ignite(s domain.Stimulus) domain.RuminationEntry {
	return domain.RuminationEntry{
		StimulusID:         s.ID,
		Label:              s.Label,
		Stage:              0,
		Intensity:          s.Intensity,
		LastStageTimestamp: s.Timestamp,
	}
}

// Advance steps every active entry forward one stage, multiplying its
// intensity by decayFactor, and drops entries that have reached maxStages.
// It never mutates its input slice.
func Advance(active []domain.RuminationEntry, decayFactor float64, maxStages int) []domain.RuminationEntry {
	out := make([]domain.RuminationEntry, 0, len(active))
	for _, e := range active {
		e.Stage++
		e.Intensity *= decayFactor
		if e.Expired(maxStages) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Effects resolves the dimension/emotion deltas a set of active entries
// should re-apply this cycle, each scaled by the entry's current
// (decayed) intensity.
func Effects(active []domain.RuminationEntry, custom map[string]mapping.Effect) []mapping.Effect {
	out := make([]mapping.Effect, 0, len(active))
	for _, e := range active {
		base, ok := mapping.Resolve(e.Label, custom)
		if !ok {
			continue
		}
		out = append(out, scale(base, e.Intensity))
	}
	return out
}

func scale(e mapping.Effect, factor float64) mapping.Effect {
	dims := make(map[string]float64, len(e.Dimensions))
	for k, v := range e.Dimensions {
		dims[k] = v * factor
	}
	emotions := make(map[string]float64, len(e.Emotions))
	for k, v := range e.Emotions {
		emotions[k] = v * factor
	}
	return mapping.Effect{Dimensions: dims, Emotions: emotions}
}
