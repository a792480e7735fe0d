package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"emotion-engine/internal/domain"
	"emotion-engine/internal/engine"
	"emotion-engine/internal/peek"
	"emotion-engine/internal/persistence"
)

// Handlers holds the dependencies every Observation API endpoint needs:
// a Manager for the stateful operations, and the on-disk root both this
// agent's own state and its siblings' state live under.
type Handlers struct {
	logger           *zap.Logger
	manager          *engine.Manager
	stateDir         string
	lockStaleTimeout time.Duration
	maxPeekResults   int
}

// NewHandlers builds a Handlers instance.
func NewHandlers(logger *zap.Logger, manager *engine.Manager, stateDir string, lockStaleTimeout time.Duration, maxPeekResults int) *Handlers {
	if lockStaleTimeout <= 0 {
		lockStaleTimeout = persistence.DefaultLockStaleTimeout
	}
	if maxPeekResults <= 0 {
		maxPeekResults = 25
	}
	return &Handlers{
		logger:           logger,
		manager:          manager,
		stateDir:         stateDir,
		lockStaleTimeout: lockStaleTimeout,
		maxPeekResults:   maxPeekResults,
	}
}

// loadOrDefault returns the agent's persisted state, initializing a fresh
// default-personality state if none exists yet. A corrupt or unreadable
// state file (SchemaError) is recovered locally rather than surfaced: it
// falls back to a fresh default state, same as a missing file, and logs
// the loss.
func (h *Handlers) loadOrDefault(agentID string) (domain.State, error) {
	if !persistence.Exists(h.stateDir, agentID) {
		return h.manager.Default(domain.DefaultPersonality()), nil
	}
	state, err := persistence.Load(h.stateDir, agentID)
	if err != nil {
		if kind, ok := domain.KindOf(err); ok && kind == domain.KindSchema {
			h.logger.Warn("state file unreadable, falling back to default state",
				zap.String("agentId", agentID), zap.Error(err))
			return h.manager.Default(domain.DefaultPersonality()), nil
		}
		return domain.State{}, err
	}
	return state, nil
}

// GetState serves a decay-preview snapshot without persisting anything:
// the caller sees what the state would look like "right now" without
// committing that passage of time.
func (h *Handlers) GetState(c *gin.Context) {
	agentID := c.Param("id")
	state, err := h.loadOrDefault(agentID)
	if err != nil {
		h.fail(c, err)
		return
	}

	elapsed := time.Since(state.LastUpdated)
	preview := h.manager.ApplyDecay(state, elapsed)
	c.JSON(http.StatusOK, h.manager.Snapshot(preview))
}

// GetPeek lists sibling agents' affective summaries.
func (h *Handlers) GetPeek(c *gin.Context) {
	agentID := c.Param("id")
	results, err := peek.Peek(h.stateDir, agentID, h.maxPeekResults)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"peek": results})
}

// PostStimulus applies a classified stimulus to the agent's state,
// committing decay for the elapsed time first.
func (h *Handlers) PostStimulus(c *gin.Context) {
	var req struct {
		Label         string  `json:"label" binding:"required"`
		Intensity     float64 `json:"intensity"`
		Trigger       string  `json:"trigger"`
		Role          string  `json:"role"`
		ParticipantID string  `json:"participantId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.mutate(c, func(s domain.State) (domain.State, error) {
		s = h.manager.ApplyDecay(s, time.Since(s.LastUpdated))
		return h.manager.ApplyStimulus(s, req.Label, req.Intensity, req.Trigger, req.Role, req.ParticipantID)
	})
}

// PostDecay explicitly commits decay for the elapsed time and persists it.
func (h *Handlers) PostDecay(c *gin.Context) {
	h.mutate(c, func(s domain.State) (domain.State, error) {
		elapsed := time.Since(s.LastUpdated)
		decayed := h.manager.ApplyDecay(s, elapsed)
		decayed.LastUpdated = time.Now().UTC()
		return decayed, nil
	})
}

// PostRuminationAdvance steps every active rumination entry forward.
func (h *Handlers) PostRuminationAdvance(c *gin.Context) {
	h.mutate(c, func(s domain.State) (domain.State, error) {
		return h.manager.AdvanceRumination(s), nil
	})
}

// PostPersonality sets one OCEAN trait and re-derives baseline/decay rates.
func (h *Handlers) PostPersonality(c *gin.Context) {
	var req struct {
		Trait string  `json:"trait" binding:"required"`
		Value float64 `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	h.mutate(c, func(s domain.State) (domain.State, error) {
		return h.manager.SetPersonalityTrait(s, req.Trait, req.Value)
	})
}

// PostPreset switches the agent's whole personality to a named preset.
func (h *Handlers) PostPreset(c *gin.Context) {
	presetID := c.Param("presetId")
	h.mutate(c, func(s domain.State) (domain.State, error) {
		return h.manager.ApplyPreset(s, presetID)
	})
}

// PostReset discards dimensions/emotions/history/rumination.
func (h *Handlers) PostReset(c *gin.Context) {
	h.mutate(c, func(s domain.State) (domain.State, error) {
		return h.manager.Reset(s), nil
	})
}

// mutate is the shared load-lock-apply-save pipeline every mutating
// endpoint runs: acquire the agent's lock, load its state (or default),
// apply fn, persist the result, and respond with the resulting snapshot.
func (h *Handlers) mutate(c *gin.Context, fn func(domain.State) (domain.State, error)) {
	agentID := c.Param("id")

	release, err := persistence.AcquireLock(h.stateDir, agentID, h.lockStaleTimeout)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer release()

	state, err := h.loadOrDefault(agentID)
	if err != nil {
		h.fail(c, err)
		return
	}

	next, err := fn(state)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := persistence.Save(h.stateDir, agentID, next); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, h.manager.Snapshot(next))
}

// fail maps a domain.EngineError to its HTTP status and responds.
func (h *Handlers) fail(c *gin.Context, err error) {
	kind, ok := domain.KindOf(err)
	if !ok {
		h.logger.Error("unclassified error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	switch kind {
	case domain.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.KindIO:
		h.logger.Error("io error", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
	case domain.KindConfig:
		h.logger.Error("config error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "misconfigured"})
	default:
		h.logger.Error("unexpected error kind", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
