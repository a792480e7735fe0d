// Package httpapi exposes the engine's Observation API: a small Gin
// surface for reading an agent's current affective snapshot and driving
// its mutating operations (stimulus, decay, rumination, personality,
// preset, reset), plus a read-only peek across sibling agents. This is
// deliberately not a full dashboard — just the HTTP seam a dashboard or
// chat frontend would sit behind.
package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"emotion-engine/internal/authtoken"
)

// NewRouter wires the Observation API's middleware and routes.
func NewRouter(logger *zap.Logger, issuer *authtoken.Issuer, h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	v1 := r.Group("/v1/agents/:id")
	v1.GET("/state", h.GetState)
	v1.GET("/peek", h.GetPeek)

	authed := v1.Group("")
	authed.Use(JWTAuthMiddleware(issuer))
	authed.POST("/stimulus", h.PostStimulus)
	authed.POST("/decay", h.PostDecay)
	authed.POST("/rumination/advance", h.PostRuminationAdvance)
	authed.POST("/personality", h.PostPersonality)
	authed.POST("/preset/:presetId", h.PostPreset)
	authed.POST("/reset", h.PostReset)

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
