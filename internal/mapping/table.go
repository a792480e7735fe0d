// Package mapping resolves emotion labels (from a classifier or a caller)
// to dimension/emotion deltas via a static taxonomy table, with aliasing
// and a user-supplied custom overlay merged on top.
package mapping

import "strings"

// Effect is the set of dimension and basic-emotion deltas a label applies.
// Maps carry only the non-zero deltas; unset keys mean "no change".
type Effect struct {
	Dimensions map[string]float64 `json:"dimensions,omitempty"`
	Emotions   map[string]float64 `json:"emotions,omitempty"`
}

// aliases maps a surface label to its canonical entry in table.
var aliases = map[string]string{
	"joy":       "happy",
	"joyful":    "happy",
	"glad":      "happy",
	"furious":   "angry",
	"mad":       "angry",
	"irate":     "angry",
	"sorrowful": "sad",
	"unhappy":   "sad",
	"down":      "sad",
	"scared":    "fearful",
	"afraid":    "fearful",
	"terrified": "fearful",
	"grossed":   "disgusted",
	"repulsed":  "disgusted",
	"shocked":   "surprised",
	"astonished": "surprised",
	"inquisitive": "curious",
	"bonded":    "connected",
	"attached":  "connected",
}

// table is the static label -> effect dictionary. It covers the ≥15
// canonical labels the spec requires plus the goal-related achievement/
// threat vocabulary from §4.4.
var table = map[string]Effect{
	"happy": {
		Dimensions: map[string]float64{"pleasure": 0.3, "energy": 0.1},
		Emotions:   map[string]float64{"happiness": 0.4},
	},
	"sad": {
		Dimensions: map[string]float64{"pleasure": -0.3, "arousal": -0.2},
		Emotions:   map[string]float64{"sadness": 0.4},
	},
	"angry": {
		Dimensions: map[string]float64{"pleasure": -0.25, "arousal": 0.3, "dominance": 0.1},
		Emotions:   map[string]float64{"anger": 0.4},
	},
	"fearful": {
		Dimensions: map[string]float64{"pleasure": -0.2, "arousal": 0.35, "dominance": -0.2},
		Emotions:   map[string]float64{"fear": 0.4},
	},
	"disgusted": {
		Dimensions: map[string]float64{"pleasure": -0.2, "trust": -0.15},
		Emotions:   map[string]float64{"disgust": 0.4},
	},
	"surprised": {
		Dimensions: map[string]float64{"arousal": 0.3},
		Emotions:   map[string]float64{"surprise": 0.4},
	},
	"curious": {
		Dimensions: map[string]float64{"curiosity": 0.3, "arousal": 0.1},
	},
	"connected": {
		Dimensions: map[string]float64{"connection": 0.3, "trust": 0.1},
		Emotions:   map[string]float64{"happiness": 0.1},
	},
	"trusting": {
		Dimensions: map[string]float64{"trust": 0.3},
	},
	"calm": {
		Dimensions: map[string]float64{"arousal": -0.25, "pleasure": 0.1},
	},
	"excited": {
		Dimensions: map[string]float64{"arousal": 0.35, "energy": 0.2},
		Emotions:   map[string]float64{"happiness": 0.15, "surprise": 0.1},
	},
	"bored": {
		Dimensions: map[string]float64{"arousal": -0.2, "curiosity": -0.15, "energy": -0.15},
	},
	"frustrated": {
		Dimensions: map[string]float64{"pleasure": -0.25, "dominance": -0.1, "arousal": 0.2},
		Emotions:   map[string]float64{"anger": 0.25},
	},
	"anxious": {
		Dimensions: map[string]float64{"arousal": 0.3, "dominance": -0.2, "pleasure": -0.15},
		Emotions:   map[string]float64{"fear": 0.3},
	},
	"confused": {
		Dimensions: map[string]float64{"dominance": -0.15, "curiosity": 0.1},
		Emotions:   map[string]float64{"surprise": 0.15},
	},
	"fatigued": {
		Dimensions: map[string]float64{"energy": -0.3, "arousal": -0.2},
	},
	"relieved": {
		Dimensions: map[string]float64{"pleasure": 0.2, "arousal": -0.15, "dominance": 0.1},
	},
	"energized": {
		Dimensions: map[string]float64{"energy": 0.3, "arousal": 0.2},
	},
	"focused": {
		Dimensions: map[string]float64{"dominance": 0.15, "arousal": 0.1},
	},
	"lonely": {
		Dimensions: map[string]float64{"connection": -0.25, "pleasure": -0.15},
		Emotions:   map[string]float64{"sadness": 0.2},
	},
	"neutral": {},
}

// KnownDimensions and KnownEmotions gate custom-mapping validation.
var (
	KnownDimensions = map[string]struct{}{
		"pleasure": {}, "arousal": {}, "dominance": {},
		"connection": {}, "curiosity": {}, "energy": {}, "trust": {},
	}
	KnownEmotions = map[string]struct{}{
		"happiness": {}, "sadness": {}, "anger": {}, "fear": {}, "disgust": {}, "surprise": {},
	}
)

// Resolve looks up label (case-insensitive, alias-resolved) in custom
// first, then the static table. Unknown labels return (Effect{}, false).
func Resolve(label string, custom map[string]Effect) (Effect, bool) {
	canon := canonicalize(label)

	if custom != nil {
		if e, ok := custom[canon]; ok {
			return e, true
		}
	}
	e, ok := table[canon]
	return e, ok
}

func canonicalize(label string) string {
	l := strings.ToLower(strings.TrimSpace(label))
	if c, ok := aliases[l]; ok {
		return c
	}
	return l
}

// ValidateCustom lowercases keys and drops any dimension/emotion delta
// entries that don't name a known axis, leaving everything else intact.
// This is the "shallow-merge" validation step of §4.3.
func ValidateCustom(raw map[string]Effect) map[string]Effect {
	out := make(map[string]Effect, len(raw))
	for label, effect := range raw {
		cleanDims := make(map[string]float64)
		for dim, v := range effect.Dimensions {
			if _, ok := KnownDimensions[dim]; ok {
				cleanDims[dim] = v
			}
		}
		cleanEmotions := make(map[string]float64)
		for em, v := range effect.Emotions {
			if _, ok := KnownEmotions[em]; ok {
				cleanEmotions[em] = v
			}
		}
		out[strings.ToLower(strings.TrimSpace(label))] = Effect{Dimensions: cleanDims, Emotions: cleanEmotions}
	}
	return out
}
