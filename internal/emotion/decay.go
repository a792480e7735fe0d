package emotion

import (
	"math"

	"emotion-engine/internal/domain"
)

// Decay moves value toward target by the fraction of distance covered in
// elapsedHours under a half-life of halfLifeHours:
//
//	new = value - (value-target)*(1-2^(-elapsed/halflife))
//
// This is a pure exponential-decay-toward-target law: applying it for
// elapsed d1 and then again for d2 is identical to applying it once for
// d1+d2 (the semigroup law §8 of the spec requires), since the surviving
// fraction 2^(-d/h) multiplies across successive applications.
func Decay(value, target, halfLifeHours, elapsedHours float64) float64 {
	if halfLifeHours <= 0 || elapsedHours <= 0 {
		return value
	}
	survive := math.Exp2(-elapsedHours / halfLifeHours)
	return value*survive + target*(1-survive)
}

// DecayDimensions decays every axis of d toward the matching axis of
// baseline, using the matching half-life in rates, and clamps the result.
func DecayDimensions(d, baseline domain.Dimensions, rates domain.DecayRates, elapsedHours float64) domain.Dimensions {
	return ClampDimensions(domain.Dimensions{
		Pleasure:   Decay(d.Pleasure, baseline.Pleasure, rates.Pleasure, elapsedHours),
		Arousal:    Decay(d.Arousal, baseline.Arousal, rates.Arousal, elapsedHours),
		Dominance:  Decay(d.Dominance, baseline.Dominance, rates.Dominance, elapsedHours),
		Connection: Decay(d.Connection, baseline.Connection, rates.Connection, elapsedHours),
		Curiosity:  Decay(d.Curiosity, baseline.Curiosity, rates.Curiosity, elapsedHours),
		Energy:     Decay(d.Energy, baseline.Energy, rates.Energy, elapsedHours),
		Trust:      Decay(d.Trust, baseline.Trust, rates.Trust, elapsedHours),
	})
}

// DecayEmotions decays every basic emotion in e toward zero, using the
// matching half-life in rates, and clamps the result.
func DecayEmotions(e domain.BasicEmotions, rates domain.EmotionDecayRates, elapsedHours float64) domain.BasicEmotions {
	return ClampEmotions(domain.BasicEmotions{
		Happiness: Decay(e.Happiness, 0, rates.Happiness, elapsedHours),
		Sadness:   Decay(e.Sadness, 0, rates.Sadness, elapsedHours),
		Anger:     Decay(e.Anger, 0, rates.Anger, elapsedHours),
		Fear:      Decay(e.Fear, 0, rates.Fear, elapsedHours),
		Disgust:   Decay(e.Disgust, 0, rates.Disgust, elapsedHours),
		Surprise:  Decay(e.Surprise, 0, rates.Surprise, elapsedHours),
	})
}
