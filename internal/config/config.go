// Package config loads and validates the engine's environment-driven
// configuration.
package config

import (
	"github.com/caarlos0/env/v10"

	"emotion-engine/internal/domain"
)

// Config centralizes every tunable the engine process needs at startup.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	StateDir string `env:"STATE_DIR" envDefault:"./data"`
	AgentID  string `env:"AGENT_ID" envDefault:"default"`

	JWTSecret           string `env:"JWT_SECRET,required"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"15"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	ClassifierAPIKey        string  `env:"CLASSIFIER_API_KEY"`
	ClassifierBaseURL       string  `env:"CLASSIFIER_BASE_URL"`
	ClassifierModel         string  `env:"CLASSIFIER_MODEL" envDefault:"claude-3-5-haiku-latest"`
	ClassifierURL           string  `env:"CLASSIFIER_URL"`
	ClassifierConfidenceMin float64 `env:"CLASSIFIER_CONFIDENCE_MIN" envDefault:"0.4"`
	ClassificationLogPath   string  `env:"CLASSIFICATION_LOG_PATH" envDefault:"./data/classifications.jsonl"`

	BaseHalfLifeHours           float64 `env:"BASE_HALF_LIFE_HOURS" envDefault:"12"`
	MaxHistory                  int     `env:"MAX_HISTORY" envDefault:"50"`
	RuminationThreshold         float64 `env:"RUMINATION_THRESHOLD" envDefault:"0.5"`
	RuminationMaxStages         int     `env:"RUMINATION_MAX_STAGES" envDefault:"4"`
	RuminationDecayFactor       float64 `env:"RUMINATION_DECAY_FACTOR" envDefault:"0.8"`
	DecayServiceIntervalMinutes int     `env:"DECAY_SERVICE_INTERVAL_MINUTES" envDefault:"5"`
	LockStaleTimeoutSeconds     int     `env:"LOCK_STALE_TIMEOUT_SECONDS" envDefault:"10"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, domain.NewConfigError("parse environment configuration: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the range/presence requirements every config field
// carries.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return domain.NewConfigError("JWT_SECRET is required")
	}
	if c.JWTAccessTTLMinutes <= 0 {
		return domain.NewConfigError("JWT_ACCESS_TTL_MINUTES must be positive")
	}
	if c.BaseHalfLifeHours <= 0 {
		return domain.NewConfigError("BASE_HALF_LIFE_HOURS must be positive")
	}
	if c.MaxHistory <= 0 {
		return domain.NewConfigError("MAX_HISTORY must be positive")
	}
	if c.RuminationThreshold < 0 || c.RuminationThreshold > 1 {
		return domain.NewConfigError("RUMINATION_THRESHOLD must be in [0,1]")
	}
	if c.RuminationMaxStages <= 0 {
		return domain.NewConfigError("RUMINATION_MAX_STAGES must be positive")
	}
	if c.RuminationDecayFactor <= 0 || c.RuminationDecayFactor >= 1 {
		return domain.NewConfigError("RUMINATION_DECAY_FACTOR must be in (0,1)")
	}
	if c.DecayServiceIntervalMinutes <= 0 {
		return domain.NewConfigError("DECAY_SERVICE_INTERVAL_MINUTES must be positive")
	}
	if c.LockStaleTimeoutSeconds <= 0 {
		return domain.NewConfigError("LOCK_STALE_TIMEOUT_SECONDS must be positive")
	}
	if c.ClassifierURL == "" && c.ClassifierAPIKey == "" {
		return domain.NewConfigError("either CLASSIFIER_URL or CLASSIFIER_API_KEY must be set")
	}
	return nil
}
