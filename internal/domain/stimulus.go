package domain

import "time"

// Stimulus is a classified emotional event applied to state.
type Stimulus struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Label      string    `json:"label"`
	Intensity  float64   `json:"intensity"`
	Reason     string    `json:"reason"`
	Confidence float64   `json:"confidence"`
}

// RuminationEntry is a multi-stage decaying re-application of a stimulus.
type RuminationEntry struct {
	StimulusID        string    `json:"stimulusId"`
	Label             string    `json:"label"`
	Stage             int       `json:"stage"`
	Intensity         float64   `json:"intensity"`
	LastStageTimestamp time.Time `json:"lastStageTimestamp"`
}

// RuminationState wraps the set of currently active rumination entries.
type RuminationState struct {
	Active []RuminationEntry `json:"active"`
}

// Expired reports whether an entry has run its course: stage has reached
// maxStages, or its intensity has decayed below the noise floor.
func (e RuminationEntry) Expired(maxStages int) bool {
	return e.Stage >= maxStages || e.Intensity < 0.05
}

// Bucket is the per-user or per-agent history record: the latest stimulus
// observed plus a bounded history of stimuli.
type Bucket struct {
	Latest  *Stimulus  `json:"latest,omitempty"`
	History []Stimulus `json:"history,omitempty"`
}

// Meta tracks bookkeeping fields that must hold across every commit.
type Meta struct {
	TotalUpdates int       `json:"totalUpdates"`
	CreatedAt    time.Time `json:"createdAt"`
}
