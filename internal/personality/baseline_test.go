package personality

import (
	"testing"

	"emotion-engine/internal/domain"
)

func TestDeriveBaseline_QualitativeSigns(t *testing.T) {
	high := domain.Personality{Openness: 0.9, Conscientiousness: 0.9, Extraversion: 0.9, Agreeableness: 0.9, Neuroticism: 0.1}
	low := domain.Personality{Openness: 0.1, Conscientiousness: 0.1, Extraversion: 0.1, Agreeableness: 0.1, Neuroticism: 0.9}

	hb := DeriveBaseline(high)
	lb := DeriveBaseline(low)

	if hb.Pleasure <= lb.Pleasure {
		t.Fatalf("expected agreeable+stable pleasure > disagreeable+neurotic pleasure: %v vs %v", hb.Pleasure, lb.Pleasure)
	}
	if hb.Arousal <= lb.Arousal {
		t.Fatalf("expected extraverted arousal > introverted arousal: %v vs %v", hb.Arousal, lb.Arousal)
	}
	if hb.Dominance <= lb.Dominance {
		t.Fatalf("expected conscientious dominance > low-conscientious dominance: %v vs %v", hb.Dominance, lb.Dominance)
	}
	if hb.Connection <= lb.Connection {
		t.Fatalf("expected agreeable connection > disagreeable connection: %v vs %v", hb.Connection, lb.Connection)
	}
	if hb.Curiosity <= lb.Curiosity {
		t.Fatalf("expected open curiosity > closed curiosity: %v vs %v", hb.Curiosity, lb.Curiosity)
	}
	if hb.Energy <= lb.Energy {
		t.Fatalf("expected extraverted energy > introverted energy: %v vs %v", hb.Energy, lb.Energy)
	}
	if hb.Trust <= lb.Trust {
		t.Fatalf("expected agreeable+stable trust > disagreeable+neurotic trust: %v vs %v", hb.Trust, lb.Trust)
	}
}

func TestDeriveBaseline_AlwaysInRange(t *testing.T) {
	extremes := []domain.Personality{
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
		{1, 0, 1, 0, 1},
		{0, 1, 0, 1, 0},
	}
	for _, p := range extremes {
		b := DeriveBaseline(p)
		if b.Pleasure < -1 || b.Pleasure > 1 || b.Arousal < -1 || b.Arousal > 1 || b.Dominance < -1 || b.Dominance > 1 {
			t.Fatalf("bipolar baseline out of range for %+v: %+v", p, b)
		}
		for _, v := range []float64{b.Connection, b.Curiosity, b.Energy, b.Trust} {
			if v < 0 || v > 1 {
				t.Fatalf("unipolar baseline out of range for %+v: %+v", p, b)
			}
		}
	}
}

func TestMandelaPresetLikeProfile_PositivePleasureBaseline(t *testing.T) {
	// High agreeableness, low neuroticism: matches the "mandela" preset
	// fixture used in the end-to-end preset-switch scenario.
	p := domain.Personality{Openness: 0.6, Conscientiousness: 0.7, Extraversion: 0.6, Agreeableness: 0.85, Neuroticism: 0.2}
	b := DeriveBaseline(p)
	if b.Pleasure <= 0 {
		t.Fatalf("expected positive pleasure baseline, got %v", b.Pleasure)
	}
}
