package engine

import (
	"math"
	"testing"
	"time"

	"emotion-engine/internal/domain"
)

func TestScenario_JoyPulse(t *testing.T) {
	m := New(DefaultConfig())
	s := m.Default(domain.DefaultPersonality())

	s, err := m.ApplyStimulus(s, "happy", 0.7, "t", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Dimensions.Pleasure <= 0 {
		t.Fatalf("expected pleasure > 0, got %v", s.Dimensions.Pleasure)
	}
	if s.BasicEmotions.Happiness <= 0 {
		t.Fatalf("expected happiness > 0, got %v", s.BasicEmotions.Happiness)
	}
	snap := m.Snapshot(s)
	if snap.PrimaryEmotion != "happiness" {
		t.Fatalf("expected primary emotion happiness, got %s", snap.PrimaryEmotion)
	}
	if len(s.RecentStimuli) != 1 {
		t.Fatalf("expected one recent stimulus, got %d", len(s.RecentStimuli))
	}
	if s.Meta.TotalUpdates != 1 {
		t.Fatalf("expected totalUpdates==1, got %d", s.Meta.TotalUpdates)
	}
}

func TestScenario_DecayToBaseline(t *testing.T) {
	m := New(DefaultConfig())
	s := m.Default(domain.DefaultPersonality())
	s, err := m.ApplyStimulus(s, "happy", 0.7, "t", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	postPulse := s.Dimensions.Pleasure
	baseline := s.Baseline.Pleasure
	halfLife := s.DecayRates.Pleasure

	decayed := m.ApplyDecay(s, time.Duration(halfLife*float64(time.Hour)))
	want := baseline + (postPulse-baseline)*0.5
	if math.Abs(decayed.Dimensions.Pleasure-want) > 1e-6 {
		t.Fatalf("expected half-way decay to %v, got %v", want, decayed.Dimensions.Pleasure)
	}
}

func TestScenario_RuminationIgnition(t *testing.T) {
	m := New(DefaultConfig())
	p := domain.Personality{Neuroticism: 0.8}
	s := m.Default(p)

	s, err := m.ApplyStimulus(s, "angry", 0.9, "t", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Rumination.Active) != 1 {
		t.Fatalf("expected one active rumination entry, got %d", len(s.Rumination.Active))
	}
	entry := s.Rumination.Active[0]
	if entry.Stage != 0 || entry.Intensity != 0.9 {
		t.Fatalf("expected stage=0 intensity=0.9, got %+v", entry)
	}

	s = m.AdvanceRumination(s)
	s = m.AdvanceRumination(s)
	entry = s.Rumination.Active[0]
	if entry.Stage != 2 {
		t.Fatalf("expected stage==2, got %d", entry.Stage)
	}
	if math.Abs(entry.Intensity-0.576) > 1e-9 {
		t.Fatalf("expected intensity~=0.576, got %v", entry.Intensity)
	}

	for i := 0; i < 10 && len(s.Rumination.Active) > 0; i++ {
		s = m.AdvanceRumination(s)
	}
	if len(s.Rumination.Active) != 0 {
		t.Fatalf("expected rumination entry eventually removed, got %+v", s.Rumination.Active)
	}
}

func TestScenario_GoalAmplification(t *testing.T) {
	m := New(DefaultConfig())

	motivated := domain.Personality{Conscientiousness: 0.9, Neuroticism: 0.2}
	neutral := domain.DefaultPersonality()

	sMotivated := m.Default(motivated)
	sNeutral := m.Default(neutral)

	sMotivated, err := m.ApplyStimulus(sMotivated, "frustrated", 0.5, "t", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sNeutral, err = m.ApplyStimulus(sNeutral, "frustrated", 0.5, "t", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	motivatedEffective := sMotivated.RecentStimuli[0].Intensity
	if motivatedEffective <= 0.5 {
		t.Fatalf("expected amplified effective intensity > 0.5, got %v", motivatedEffective)
	}

	motivatedDelta := sMotivated.Baseline.Pleasure - sMotivated.Dimensions.Pleasure
	neutralDelta := sNeutral.Baseline.Pleasure - sNeutral.Dimensions.Pleasure
	if motivatedDelta <= neutralDelta {
		t.Fatalf("expected stronger negative pleasure swing for motivated profile: motivated=%v neutral=%v", motivatedDelta, neutralDelta)
	}
}

func TestScenario_PresetSwitch(t *testing.T) {
	m := New(DefaultConfig())
	s := m.Default(domain.DefaultPersonality())
	before := s.Meta.TotalUpdates

	s, err := m.ApplyPreset(s, "mandela")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Personality.Agreeableness != 0.85 {
		t.Fatalf("expected mandela personality applied, got %+v", s.Personality)
	}
	if s.Baseline.Pleasure <= 0 {
		t.Fatalf("expected positive pleasure baseline after mandela preset, got %v", s.Baseline.Pleasure)
	}
	if s.Meta.TotalUpdates != before+1 {
		t.Fatalf("expected totalUpdates incremented by 1, got before=%d after=%d", before, s.Meta.TotalUpdates)
	}
}

func TestApplyStimulus_ZeroIntensityStillRecordsHistory(t *testing.T) {
	m := New(DefaultConfig())
	s := m.Default(domain.DefaultPersonality())
	before := s.Dimensions

	s, err := m.ApplyStimulus(s, "happy", 0, "t", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Dimensions != before {
		t.Fatalf("expected dimensions unchanged at zero intensity: before=%+v after=%+v", before, s.Dimensions)
	}
	if len(s.RecentStimuli) != 1 {
		t.Fatalf("expected stimulus still recorded, got %d", len(s.RecentStimuli))
	}
}

func TestApplyStimulus_UnknownLabelIsNoop(t *testing.T) {
	m := New(DefaultConfig())
	s := m.Default(domain.DefaultPersonality())
	before := s.Dimensions
	beforeEmotions := s.BasicEmotions

	s, err := m.ApplyStimulus(s, "not-a-real-label", 0.5, "t", "", "")
	if err != nil {
		t.Fatalf("expected unknown label to be a no-op, not an error: %v", err)
	}
	if s.Dimensions != before {
		t.Fatalf("expected dimensions unchanged for unknown label: before=%+v after=%+v", before, s.Dimensions)
	}
	if s.BasicEmotions != beforeEmotions {
		t.Fatalf("expected emotions unchanged for unknown label: before=%+v after=%+v", beforeEmotions, s.BasicEmotions)
	}
	if len(s.RecentStimuli) != 1 {
		t.Fatalf("expected unknown-label stimulus still recorded, got %d", len(s.RecentStimuli))
	}
	if s.Meta.TotalUpdates != 1 {
		t.Fatalf("expected totalUpdates incremented for unknown label, got %d", s.Meta.TotalUpdates)
	}
}

func TestApplyStimulus_RecordsParticipantBucket(t *testing.T) {
	m := New(DefaultConfig())
	s := m.Default(domain.DefaultPersonality())

	s, err := m.ApplyStimulus(s, "happy", 0.7, "t", "user", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bucket, ok := s.Users["u1"]
	if !ok {
		t.Fatalf("expected user bucket u1 to be created")
	}
	if bucket.Latest == nil || bucket.Latest.Label != "happy" {
		t.Fatalf("expected bucket latest to be the happy stimulus, got %+v", bucket.Latest)
	}
	if len(bucket.History) != 1 {
		t.Fatalf("expected bucket history of length 1, got %d", len(bucket.History))
	}
	if len(s.Agents) != 0 {
		t.Fatalf("expected agents buckets untouched by a user-role stimulus, got %+v", s.Agents)
	}

	s, err = m.ApplyStimulus(s, "angry", 0.6, "t", "agent", "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Agents["a1"]; !ok {
		t.Fatalf("expected agent bucket a1 to be created")
	}

	before := len(s.Users)
	if _, err := m.ApplyStimulus(s, "happy", 0.7, "t", "user", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Users) != before {
		t.Fatalf("expected blank participantID to leave buckets untouched")
	}
}

func TestApplyDecay_AtBaselineIsNoop(t *testing.T) {
	m := New(DefaultConfig())
	s := m.Default(domain.DefaultPersonality())
	decayed := m.ApplyDecay(s, 1000*time.Hour)
	if decayed.Dimensions != s.Baseline {
		t.Fatalf("expected state already at baseline to remain at baseline: %+v", decayed.Dimensions)
	}
}

func TestReset_PreservesPersonalityAndBuckets(t *testing.T) {
	m := New(DefaultConfig())
	s := m.Default(domain.Personality{Openness: 0.9})
	s, _ = m.ApplyStimulus(s, "happy", 0.7, "t", "user", "u1")

	reset := m.Reset(s)
	if reset.Personality.Openness != 0.9 {
		t.Fatalf("expected personality preserved across reset")
	}
	if reset.Dimensions != reset.Baseline {
		t.Fatalf("expected dimensions reset to baseline")
	}
	if len(reset.RecentStimuli) != 0 {
		t.Fatalf("expected history cleared on reset")
	}
	if _, ok := reset.Users["u1"]; !ok {
		t.Fatalf("expected user buckets preserved across reset")
	}
}

func TestSetPersonalityTrait_RederivesBaselineAndRates(t *testing.T) {
	m := New(DefaultConfig())
	s := m.Default(domain.DefaultPersonality())

	s, err := m.SetPersonalityTrait(s, "neuroticism", 0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Personality.Neuroticism != 0.9 {
		t.Fatalf("expected trait updated")
	}

	fresh := m.Default(s.Personality)
	if s.Baseline != fresh.Baseline {
		t.Fatalf("expected baseline re-derived to match a fresh state with the same personality")
	}
}

func TestSetPersonalityTrait_RejectsUnknownTraitAndOutOfRange(t *testing.T) {
	m := New(DefaultConfig())
	s := m.Default(domain.DefaultPersonality())

	if _, err := m.SetPersonalityTrait(s, "bogus", 0.5); err == nil {
		t.Fatalf("expected error for unknown trait")
	}
	if _, err := m.SetPersonalityTrait(s, "openness", 1.5); err == nil {
		t.Fatalf("expected error for out-of-range value")
	}
}
