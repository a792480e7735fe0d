package personality

import "emotion-engine/internal/domain"

// DeriveDecayRates computes the per-dimension half-life (hours) from a
// base half-life and personality: bipolar dimensions shorten under high
// neuroticism (faster swing back to baseline); unipolar dimensions
// lengthen under high conscientiousness (slower drift).
func DeriveDecayRates(p domain.Personality, baseHalfLifeHours float64) domain.DecayRates {
	bipolar := baseHalfLifeHours / (1 + 0.5*p.Neuroticism)
	unipolar := baseHalfLifeHours * (1 + 0.5*p.Conscientiousness)
	return domain.DecayRates{
		Pleasure:   bipolar,
		Arousal:    bipolar,
		Dominance:  bipolar,
		Connection: unipolar,
		Curiosity:  unipolar,
		Energy:     unipolar,
		Trust:      unipolar,
	}
}

// DeriveEmotionDecayRates computes the per-basic-emotion half-life
// (hours): anger/fear run faster under high neuroticism, happiness runs
// slower under high extraversion, the rest track the base half-life.
func DeriveEmotionDecayRates(p domain.Personality, baseHalfLifeHours float64) domain.EmotionDecayRates {
	fastUnderNeuroticism := baseHalfLifeHours / (1 + 0.5*p.Neuroticism)
	return domain.EmotionDecayRates{
		Happiness: baseHalfLifeHours * (1 + 0.3*p.Extraversion),
		Sadness:   baseHalfLifeHours,
		Anger:     fastUnderNeuroticism,
		Fear:      fastUnderNeuroticism,
		Disgust:   baseHalfLifeHours,
		Surprise:  baseHalfLifeHours,
	}
}
