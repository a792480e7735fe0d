// Package emotion implements the pure, allocation-light primitives the
// rest of the engine is built on: clamping, primary-emotion selection,
// RMS intensity, and delta application. Nothing here mutates its inputs
// or touches the clock or the filesystem.
package emotion

import (
	"math"
	"sort"

	"emotion-engine/internal/domain"
)

// neutralThreshold is the ceiling below which every basic emotion is
// considered neutral (see PrimaryEmotion).
const neutralThreshold = 0.05

// ClampDimension clamps v to the declared range for the named dimension:
// [-1,1] for the bipolar PAD axes, [0,1] for the four unipolar axes.
// Unknown names are clamped to [0,1] defensively but should not occur.
func ClampDimension(name string, v float64) float64 {
	if domain.IsBipolar(name) {
		return clamp(v, -1, 1)
	}
	return clamp(v, 0, 1)
}

// ClampDimensions returns a fresh Dimensions with every field clamped to
// its declared range.
func ClampDimensions(d domain.Dimensions) domain.Dimensions {
	return domain.Dimensions{
		Pleasure:   ClampDimension("pleasure", d.Pleasure),
		Arousal:    ClampDimension("arousal", d.Arousal),
		Dominance:  ClampDimension("dominance", d.Dominance),
		Connection: ClampDimension("connection", d.Connection),
		Curiosity:  ClampDimension("curiosity", d.Curiosity),
		Energy:     ClampDimension("energy", d.Energy),
		Trust:      ClampDimension("trust", d.Trust),
	}
}

// ClampEmotions returns a fresh BasicEmotions with every level clamped to
// [0,1].
func ClampEmotions(e domain.BasicEmotions) domain.BasicEmotions {
	return domain.BasicEmotions{
		Happiness: clamp(e.Happiness, 0, 1),
		Sadness:   clamp(e.Sadness, 0, 1),
		Anger:     clamp(e.Anger, 0, 1),
		Fear:      clamp(e.Fear, 0, 1),
		Disgust:   clamp(e.Disgust, 0, 1),
		Surprise:  clamp(e.Surprise, 0, 1),
	}
}

// ClampPersonality returns a fresh Personality with every trait clamped to
// [0,1].
func ClampPersonality(p domain.Personality) domain.Personality {
	return domain.Personality{
		Openness:          clamp(p.Openness, 0, 1),
		Conscientiousness: clamp(p.Conscientiousness, 0, 1),
		Extraversion:      clamp(p.Extraversion, 0, 1),
		Agreeableness:     clamp(p.Agreeableness, 0, 1),
		Neuroticism:       clamp(p.Neuroticism, 0, 1),
	}
}

// PrimaryEmotion returns the basic emotion with the highest value, or
// "neutral" when every value is at or below the neutral threshold. Ties
// are broken alphabetically ascending for determinism.
func PrimaryEmotion(e domain.BasicEmotions) string {
	names := make([]string, len(domain.EmotionNames))
	copy(names, domain.EmotionNames)
	sort.Strings(names)

	best := "neutral"
	bestVal := neutralThreshold
	for _, name := range names {
		v := e.Get(name)
		if v > bestVal {
			bestVal = v
			best = name
		}
	}
	return best
}

// OverallIntensity returns the RMS of the six basic emotion levels,
// clamped to [0,1].
func OverallIntensity(e domain.BasicEmotions) float64 {
	vals := []float64{e.Happiness, e.Sadness, e.Anger, e.Fear, e.Disgust, e.Surprise}
	sumSquares := 0.0
	for _, v := range vals {
		sumSquares += v * v
	}
	rms := math.Sqrt(sumSquares / float64(len(vals)))
	return clamp(rms, 0, 1)
}

// ApplyDimensionDelta returns a fresh Dimensions with delta added to the
// named dimension and the result clamped. Unknown names are a no-op.
func ApplyDimensionDelta(d domain.Dimensions, name string, delta float64) domain.Dimensions {
	if !domain.IsDimension(name) {
		return d
	}
	v := ClampDimension(name, d.Get(name)+delta)
	return d.With(name, v)
}

// ApplyEmotionDelta returns a fresh BasicEmotions with delta added to the
// named emotion and the result clamped. Unknown names are a no-op.
func ApplyEmotionDelta(e domain.BasicEmotions, name string, delta float64) domain.BasicEmotions {
	if !domain.IsEmotion(name) {
		return e
	}
	v := clamp(e.Get(name)+delta, 0, 1)
	return e.With(name, v)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
