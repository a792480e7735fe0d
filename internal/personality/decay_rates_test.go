package personality

import (
	"testing"

	"emotion-engine/internal/domain"
)

func TestDeriveDecayRates_NeuroticismShortensBipolar(t *testing.T) {
	calm := domain.Personality{Neuroticism: 0.0}
	neurotic := domain.Personality{Neuroticism: 1.0}

	calmRates := DeriveDecayRates(calm, 12)
	neuroticRates := DeriveDecayRates(neurotic, 12)

	if neuroticRates.Pleasure >= calmRates.Pleasure {
		t.Fatalf("expected neurotic half-life shorter: calm=%v neurotic=%v", calmRates.Pleasure, neuroticRates.Pleasure)
	}
}

func TestDeriveDecayRates_ConscientiousnessLengthensUnipolar(t *testing.T) {
	sloppy := domain.Personality{Conscientiousness: 0.0}
	diligent := domain.Personality{Conscientiousness: 1.0}

	sloppyRates := DeriveDecayRates(sloppy, 12)
	diligentRates := DeriveDecayRates(diligent, 12)

	if diligentRates.Trust <= sloppyRates.Trust {
		t.Fatalf("expected conscientious half-life longer: sloppy=%v diligent=%v", sloppyRates.Trust, diligentRates.Trust)
	}
}

func TestDeriveEmotionDecayRates_AngerFearFasterWhenNeurotic(t *testing.T) {
	calm := domain.Personality{Neuroticism: 0.0}
	neurotic := domain.Personality{Neuroticism: 1.0}

	calmRates := DeriveEmotionDecayRates(calm, 12)
	neuroticRates := DeriveEmotionDecayRates(neurotic, 12)

	if neuroticRates.Anger >= calmRates.Anger {
		t.Fatalf("expected neurotic anger half-life shorter: calm=%v neurotic=%v", calmRates.Anger, neuroticRates.Anger)
	}
	if neuroticRates.Fear >= calmRates.Fear {
		t.Fatalf("expected neurotic fear half-life shorter: calm=%v neurotic=%v", calmRates.Fear, neuroticRates.Fear)
	}
	if neuroticRates.Sadness != calmRates.Sadness {
		t.Fatalf("expected sadness half-life unaffected by neuroticism")
	}
}

func TestDeriveEmotionDecayRates_HappinessSlowerWhenExtraverted(t *testing.T) {
	introvert := domain.Personality{Extraversion: 0.0}
	extravert := domain.Personality{Extraversion: 1.0}

	introRates := DeriveEmotionDecayRates(introvert, 12)
	extraRates := DeriveEmotionDecayRates(extravert, 12)

	if extraRates.Happiness <= introRates.Happiness {
		t.Fatalf("expected extraverted happiness half-life longer: intro=%v extra=%v", introRates.Happiness, extraRates.Happiness)
	}
}
