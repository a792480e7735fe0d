package emotion

import "testing"

func TestDecay_SemigroupLaw(t *testing.T) {
	value, target, halfLife := 0.8, 0.1, 12.0
	d1, d2 := 3.0, 5.0

	sequential := Decay(Decay(value, target, halfLife, d1), target, halfLife, d2)
	combined := Decay(value, target, halfLife, d1+d2)

	if diff := sequential - combined; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("semigroup law violated: sequential=%v combined=%v", sequential, combined)
	}
}

func TestDecay_AtBaselineIsFixedPoint(t *testing.T) {
	got := Decay(0.3, 0.3, 12.0, 100.0)
	if got != 0.3 {
		t.Fatalf("expected fixed point at baseline, got %v", got)
	}
}

func TestDecay_HalfLifeMovesHalfway(t *testing.T) {
	value, target, halfLife := 1.0, 0.0, 12.0
	got := Decay(value, target, halfLife, halfLife)
	want := 0.5
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("Decay at one half-life = %v, want %v", got, want)
	}
}

func TestDecay_ZeroElapsedIsNoop(t *testing.T) {
	if got := Decay(0.42, 0.0, 12.0, 0); got != 0.42 {
		t.Fatalf("expected no-op at elapsed=0, got %v", got)
	}
}
