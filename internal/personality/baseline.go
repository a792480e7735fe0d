// Package personality derives a resting baseline and a set of decay
// half-lives from an OCEAN profile. Every export here is pure and total:
// the same profile always yields the same baseline and rates, and all
// three derivations are meant to be recomputed together whenever
// personality changes (see engine.Manager.SetPersonalityTrait).
package personality

import (
	"emotion-engine/internal/domain"
	"emotion-engine/internal/emotion"
)

// DeriveBaseline computes the resting dimensional state for a personality
// profile. Coefficients are the closed specification's; callers must not
// change the qualitative signs (agreeable/low-neurotic raises pleasure,
// extraverted raises arousal and energy, conscientious raises dominance,
// agreeable raises connection, open raises curiosity, agreeable and
// emotionally stable raises trust).
func DeriveBaseline(p domain.Personality) domain.Dimensions {
	d := domain.Dimensions{
		Pleasure:   0.3 * (p.Agreeableness - p.Neuroticism),
		Arousal:    0.3 * (p.Extraversion - 0.5) * 2,
		Dominance:  0.3 * (p.Conscientiousness - 0.5) * 2,
		Connection: 0.3 + 0.4*p.Agreeableness,
		Curiosity:  0.3 + 0.4*p.Openness,
		Energy:     0.3 + 0.4*p.Extraversion,
		Trust:      0.3 + 0.4*(p.Agreeableness-0.5*p.Neuroticism+0.5),
	}
	return emotion.ClampDimensions(d)
}
