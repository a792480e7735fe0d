// Package ratelimit throttles outbound classifier calls so a burst of
// stimuli can't hammer a paid LLM API.
package ratelimit

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether a call keyed by key is allowed to proceed.
type Limiter interface {
	Allow(key string) bool
}

// allowScript increments a per-key counter and sets its expiry on first
// increment, so the window resets itself without a separate cleanup job.
const allowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type evaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisLimiter struct {
	client evaler
	window time.Duration
	max    int
	prefix string
}

// NewRedis builds a Limiter backed by client, allowing at most max calls
// per key within window. A nil client yields the always-allow noop
// limiter; a non-positive window or max falls back to a 1 minute window
// or 1 call.
func NewRedis(client *redis.Client, window time.Duration, max int) Limiter {
	if client == nil {
		return NewNoop()
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisLimiter{client: client, window: window, max: max, prefix: "classifier:rl:"}
}

func (l *redisLimiter) Allow(key string) bool {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if normalized == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}

	count, err := l.client.Eval(ctx, allowScript, []string{l.prefix + normalized}, seconds).Int()
	if err != nil {
		// Fail open: a Redis hiccup shouldn't block the engine from
		// applying stimuli that are otherwise ready to go.
		return true
	}
	return count <= l.max
}

type noopLimiter struct{}

// NewNoop returns a Limiter that always allows, for deployments with no
// Redis backend configured.
func NewNoop() Limiter {
	return noopLimiter{}
}

func (noopLimiter) Allow(string) bool { return true }
