// Package engine orchestrates the pure leaf packages (emotion, personality,
// mapping, goals, rumination) into the handful of stateful operations a
// caller actually performs against one agent's affective state.
package engine

import (
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"

	"emotion-engine/internal/domain"
	"emotion-engine/internal/emotion"
	"emotion-engine/internal/goals"
	"emotion-engine/internal/mapping"
	"emotion-engine/internal/personality"
	"emotion-engine/internal/presets"
	"emotion-engine/internal/rumination"
)

// Config bounds the tunable behavior of a Manager; all fields have sane
// defaults applied by New.
type Config struct {
	MaxHistory            int
	RuminationThreshold   float64
	RuminationMaxStages   int
	RuminationDecayFactor float64
	BaseHalfLifeHours     float64
	CustomMapping         map[string]mapping.Effect
}

// DefaultConfig returns the engine's factory-default tunables.
func DefaultConfig() Config {
	return Config{
		MaxHistory:            50,
		RuminationThreshold:   rumination.DefaultIntensityThreshold,
		RuminationMaxStages:   rumination.DefaultMaxStages,
		RuminationDecayFactor: rumination.DefaultStageDecayFactor,
		BaseHalfLifeHours:     12,
	}
}

// Manager applies the engine's stateful operations against a domain.State
// value, always returning a new State rather than mutating its argument.
type Manager struct {
	cfg Config
}

// New builds a Manager, filling in zero-valued Config fields with defaults.
func New(cfg Config) *Manager {
	d := DefaultConfig()
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = d.MaxHistory
	}
	if cfg.RuminationThreshold <= 0 {
		cfg.RuminationThreshold = d.RuminationThreshold
	}
	if cfg.RuminationMaxStages <= 0 {
		cfg.RuminationMaxStages = d.RuminationMaxStages
	}
	if cfg.RuminationDecayFactor <= 0 {
		cfg.RuminationDecayFactor = d.RuminationDecayFactor
	}
	if cfg.BaseHalfLifeHours <= 0 {
		cfg.BaseHalfLifeHours = d.BaseHalfLifeHours
	}
	return &Manager{cfg: cfg}
}

// Default builds a freshly-initialized state for a given personality: the
// baseline and decay rates are derived from it, dimensions start pinned to
// baseline, emotions start at zero.
func (m *Manager) Default(p domain.Personality) domain.State {
	p = emotion.ClampPersonality(p)
	baseline := personality.DeriveBaseline(p)
	now := time.Now().UTC()

	return domain.State{
		Version:           domain.CurrentVersion,
		LastUpdated:       now,
		Personality:       p,
		Dimensions:        baseline,
		Baseline:          baseline,
		DecayRates:        personality.DeriveDecayRates(p, m.cfg.BaseHalfLifeHours),
		EmotionDecayRates: personality.DeriveEmotionDecayRates(p, m.cfg.BaseHalfLifeHours),
		BasicEmotions:     domain.BasicEmotions{},
		Users:             map[string]domain.Bucket{},
		Agents:            map[string]domain.Bucket{},
		Meta:              domain.Meta{CreatedAt: now},
	}
}

// ApplyDecay moves dimensions toward baseline and emotions toward zero by
// elapsed, WITHOUT touching LastUpdated or Meta — callers that only want a
// preview (e.g. a read-only snapshot) pass the result straight to Snapshot
// without persisting it.
func (m *Manager) ApplyDecay(s domain.State, elapsed time.Duration) domain.State {
	hours := elapsed.Hours()
	s.Dimensions = emotion.DecayDimensions(s.Dimensions, s.Baseline, s.DecayRates, hours)
	s.BasicEmotions = emotion.DecayEmotions(s.BasicEmotions, s.EmotionDecayRates, hours)
	return s
}

// ApplyStimulus resolves label through the merged taxonomy, modulates its
// intensity by the agent's active goals, applies the resulting dimension
// and emotion deltas, possibly ignites rumination, and records the
// stimulus in history (and, if role/participantID identify a
// counterpart, in that counterpart's bucket). An unknown label is a
// no-op on dimensions/emotions, not an error: it's still recorded and
// still advances meta.totalUpdates, matching every other stimulus. It and
// ApplyPreset are the operations that advance meta.totalUpdates and
// LastUpdated.
func (m *Manager) ApplyStimulus(s domain.State, label string, intensity float64, trigger, role, participantID string) (domain.State, error) {
	if intensity < 0 || intensity > 1 {
		return domain.State{}, domain.NewValidationError("stimulus intensity must be in [0,1]")
	}

	effect, known := mapping.Resolve(label, m.cfg.CustomMapping)
	effectiveIntensity := intensity
	if known {
		active := goals.Infer(s.Personality)
		effectiveIntensity, _ = goals.Modulate(label, intensity, active)

		for dim, delta := range effect.Dimensions {
			s.Dimensions = emotion.ApplyDimensionDelta(s.Dimensions, dim, delta*effectiveIntensity)
		}
		for em, delta := range effect.Emotions {
			s.BasicEmotions = emotion.ApplyEmotionDelta(s.BasicEmotions, em, delta*effectiveIntensity)
		}
	}

	now := time.Now().UTC()
	stim := domain.Stimulus{
		ID:        uuid.NewString(),
		Timestamp: now,
		Label:     strings.ToLower(strings.TrimSpace(label)),
		Intensity: effectiveIntensity,
		Reason:    trigger,
	}

	if known && rumination.IsEligible(label, effectiveIntensity, m.cfg.RuminationThreshold) {
		p := rumination.Probability(s.Personality)
		if rumination.ShouldIgnite(effectiveIntensity, m.cfg.RuminationThreshold, p) {
			s.Rumination.Active = append(s.Rumination.Active, rumination.Ignite(stim))
		}
	}

	s.RecentStimuli = append(s.RecentStimuli, stim)
	if len(s.RecentStimuli) > m.cfg.MaxHistory {
		s.RecentStimuli = s.RecentStimuli[len(s.RecentStimuli)-m.cfg.MaxHistory:]
	}
	recordBucket(&s, role, participantID, stim, m.cfg.MaxHistory)

	s.Meta.TotalUpdates++
	s.LastUpdated = now
	return s, nil
}

// recordBucket files stim under the user or agent bucket named by
// participantID, tracking it as that counterpart's latest stimulus plus
// a bounded history. A blank participantID (the common case for a
// stimulus with no identified counterpart) is a no-op.
func recordBucket(s *domain.State, role, participantID string, stim domain.Stimulus, maxHistory int) {
	if participantID == "" {
		return
	}
	var buckets map[string]domain.Bucket
	switch role {
	case "user":
		s.Users = maps.Clone(s.Users)
		if s.Users == nil {
			s.Users = map[string]domain.Bucket{}
		}
		buckets = s.Users
	case "agent":
		s.Agents = maps.Clone(s.Agents)
		if s.Agents == nil {
			s.Agents = map[string]domain.Bucket{}
		}
		buckets = s.Agents
	default:
		return
	}

	b := buckets[participantID]
	latest := stim
	b.Latest = &latest
	b.History = append(b.History, stim)
	if len(b.History) > maxHistory {
		b.History = b.History[len(b.History)-maxHistory:]
	}
	buckets[participantID] = b
}

// AdvanceRumination re-applies each active entry's effect to
// dimensions/emotions, scaled by the entry's current intensity and by a
// global rumination scale of 0.3, then steps every entry forward one stage.
func (m *Manager) AdvanceRumination(s domain.State) domain.State {
	const effectScale = 0.3
	effects := rumination.Effects(s.Rumination.Active, m.cfg.CustomMapping)
	for _, eff := range effects {
		for dim, delta := range eff.Dimensions {
			s.Dimensions = emotion.ApplyDimensionDelta(s.Dimensions, dim, delta*effectScale)
		}
		for em, delta := range eff.Emotions {
			s.BasicEmotions = emotion.ApplyEmotionDelta(s.BasicEmotions, em, delta*effectScale)
		}
	}
	s.Rumination.Active = rumination.Advance(s.Rumination.Active, m.cfg.RuminationDecayFactor, m.cfg.RuminationMaxStages)
	return s
}

// SetPersonalityTrait sets one OCEAN trait and re-derives baseline and
// decay rates from the updated personality. Dimensions/emotions are left
// untouched; only future decay targets/rates change.
func (m *Manager) SetPersonalityTrait(s domain.State, trait string, value float64) (domain.State, error) {
	if !domain.IsTrait(trait) {
		return domain.State{}, domain.NewValidationError("unknown personality trait: " + trait)
	}
	if value < 0 || value > 1 {
		return domain.State{}, domain.NewValidationError("trait value must be in [0,1]")
	}
	s.Personality = s.Personality.With(trait, value)
	s.Baseline = personality.DeriveBaseline(s.Personality)
	s.DecayRates = personality.DeriveDecayRates(s.Personality, m.cfg.BaseHalfLifeHours)
	s.EmotionDecayRates = personality.DeriveEmotionDecayRates(s.Personality, m.cfg.BaseHalfLifeHours)
	return s, nil
}

// ApplyPreset swaps the agent's entire personality for a named preset and
// re-derives baseline and decay rates, same as a batch of SetPersonalityTrait
// calls.
func (m *Manager) ApplyPreset(s domain.State, id string) (domain.State, error) {
	preset, ok := presets.Get(id)
	if !ok {
		return domain.State{}, domain.NewConfigError("unknown preset: " + id)
	}
	s.Personality = preset.Personality
	s.Baseline = personality.DeriveBaseline(s.Personality)
	s.DecayRates = personality.DeriveDecayRates(s.Personality, m.cfg.BaseHalfLifeHours)
	s.EmotionDecayRates = personality.DeriveEmotionDecayRates(s.Personality, m.cfg.BaseHalfLifeHours)
	s.Meta.TotalUpdates++
	s.LastUpdated = time.Now().UTC()
	return s, nil
}

// Reset discards dimensions, emotions, history and rumination, returning
// the agent to its baseline with the same personality it already had.
func (m *Manager) Reset(s domain.State) domain.State {
	fresh := m.Default(s.Personality)
	fresh.Users = s.Users
	fresh.Agents = s.Agents
	return fresh
}

// Snapshot derives the read-only view served to callers: primary emotion,
// overall intensity, and a bounded recent-stimuli tail.
func (m *Manager) Snapshot(s domain.State) domain.Snapshot {
	recent := s.RecentStimuli
	if len(recent) > domain.MaxSnapshotStimuli {
		recent = recent[len(recent)-domain.MaxSnapshotStimuli:]
	}
	return domain.Snapshot{
		Dimensions:       s.Dimensions,
		BasicEmotions:    s.BasicEmotions,
		Personality:      s.Personality,
		PrimaryEmotion:   emotion.PrimaryEmotion(s.BasicEmotions),
		OverallIntensity: emotion.OverallIntensity(s.BasicEmotions),
		RecentStimuli:    recent,
		Rumination:       s.Rumination,
		Baseline:         s.Baseline,
		Meta:             s.Meta,
		LastUpdated:      s.LastUpdated,
	}
}
