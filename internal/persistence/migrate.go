package persistence

import (
	"encoding/json"
	"time"

	"emotion-engine/internal/domain"
)

// stimulusV1 mirrors the v1 on-disk stimulus shape: intensity was a
// three-level label rather than a float.
type stimulusV1 struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Label      string    `json:"label"`
	Intensity  string    `json:"intensity"`
	Reason     string    `json:"reason"`
	Confidence float64   `json:"confidence"`
}

type bucketV1 struct {
	Latest  *stimulusV1  `json:"latest,omitempty"`
	History []stimulusV1 `json:"history,omitempty"`
}

// stateV1 is the v1 on-disk state shape. Dimensions, emotions and
// personality are unchanged across versions; only stimulus intensity
// representation moved from a label to a float.
type stateV1 struct {
	Version       int                  `json:"version"`
	LastUpdated   time.Time            `json:"lastUpdated"`
	Personality   domain.Personality   `json:"personality"`
	Dimensions    domain.Dimensions    `json:"dimensions"`
	BasicEmotions domain.BasicEmotions `json:"basicEmotions"`
	Users         map[string]bucketV1  `json:"users"`
	Agents        map[string]bucketV1  `json:"agents"`
	Meta          domain.Meta          `json:"meta"`
}

// v1IntensityLevels maps the v1 string labels to their v2 numeric
// equivalents.
var v1IntensityLevels = map[string]float64{
	"low":    0.3,
	"medium": 0.6,
	"high":   0.9,
}

// MigrateV1 parses a v1 (or legacy/missing-version) state payload and
// rebuilds it as a v2 state: dimensions, emotions, personality and meta
// carry over unchanged; every stimulus's string intensity becomes its
// numeric equivalent; rumination starts empty since v1 had no rumination
// concept. A nil/empty payload yields an empty default v2 state.
func MigrateV1(raw []byte) (domain.State, error) {
	out := domain.State{
		Version:           domain.CurrentVersion,
		Personality:       domain.DefaultPersonality(),
		DecayRates:        domain.DecayRates{},
		EmotionDecayRates: domain.EmotionDecayRates{},
		Users:             map[string]domain.Bucket{},
		Agents:            map[string]domain.Bucket{},
	}

	if len(raw) == 0 {
		return out, nil
	}

	var v1 stateV1
	if err := json.Unmarshal(raw, &v1); err != nil {
		return domain.State{}, domain.NewSchemaError("decode v1 state payload", err)
	}

	out.LastUpdated = v1.LastUpdated
	out.Personality = v1.Personality
	out.Dimensions = v1.Dimensions
	out.BasicEmotions = v1.BasicEmotions
	out.Meta = v1.Meta
	out.Users = migrateBuckets(v1.Users)
	out.Agents = migrateBuckets(v1.Agents)
	return out, nil
}

func migrateBuckets(in map[string]bucketV1) map[string]domain.Bucket {
	out := make(map[string]domain.Bucket, len(in))
	for id, b := range in {
		out[id] = domain.Bucket{
			Latest:  migrateStimulus(b.Latest),
			History: migrateStimuli(b.History),
		}
	}
	return out
}

func migrateStimuli(in []stimulusV1) []domain.Stimulus {
	if in == nil {
		return nil
	}
	out := make([]domain.Stimulus, 0, len(in))
	for i := range in {
		out = append(out, *migrateStimulus(&in[i]))
	}
	return out
}

func migrateStimulus(s *stimulusV1) *domain.Stimulus {
	if s == nil {
		return nil
	}
	return &domain.Stimulus{
		ID:         s.ID,
		Timestamp:  s.Timestamp,
		Label:      s.Label,
		Intensity:  v1IntensityLevels[s.Intensity],
		Reason:     s.Reason,
		Confidence: s.Confidence,
	}
}
