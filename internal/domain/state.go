package domain

import "time"

// CurrentVersion is the schema version this engine reads and writes.
const CurrentVersion = 2

// State is the full persisted affective state of one agent.
type State struct {
	Version           int               `json:"version"`
	LastUpdated       time.Time         `json:"lastUpdated"`
	Personality       Personality       `json:"personality"`
	Dimensions        Dimensions        `json:"dimensions"`
	Baseline          Dimensions        `json:"baseline"`
	DecayRates        DecayRates        `json:"decayRates"`
	EmotionDecayRates EmotionDecayRates `json:"emotionDecayRates"`
	BasicEmotions     BasicEmotions     `json:"basicEmotions"`
	RecentStimuli     []Stimulus        `json:"recentStimuli"`
	Rumination        RuminationState   `json:"rumination"`
	Users             map[string]Bucket `json:"users"`
	Agents            map[string]Bucket `json:"agents"`
	Meta              Meta              `json:"meta"`
}

// Snapshot is the read-only view served to dashboard/CLI/MCP consumers.
// It is derived from a State, optionally after a decay preview, and is
// never itself persisted.
type Snapshot struct {
	Dimensions       Dimensions        `json:"dimensions"`
	BasicEmotions    BasicEmotions     `json:"basicEmotions"`
	Personality      Personality       `json:"personality"`
	PrimaryEmotion   string            `json:"primaryEmotion"`
	OverallIntensity float64           `json:"overallIntensity"`
	RecentStimuli    []Stimulus        `json:"recentStimuli"`
	Rumination       RuminationState   `json:"rumination"`
	Baseline         Dimensions        `json:"baseline"`
	Meta             Meta              `json:"meta"`
	LastUpdated      time.Time         `json:"lastUpdated"`
}

// MaxSnapshotStimuli bounds the number of recent stimuli served in a
// Snapshot, independent of the engine's internal maxHistory.
const MaxSnapshotStimuli = 10
