package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/internal/utils"
	"github.com/tkoyuncu/itemkeeper/models"
)

// rateLimiter is a fixed-window request counter keyed by client address.
// State is owned by the handler instance it is constructed for, so separate
// handlers (and tests) never share counters.
type rateLimiter struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	windowStart time.Time
	counts      map[string]int

	// now is swappable for tests.
	now func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:  limit,
		window: window,
		counts: make(map[string]int),
		now:    time.Now,
	}
}

// allow reports whether one more request from key fits into the current
// window. When the window has elapsed, all counters reset at once.
func (l *rateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.windowStart) >= l.window {
		l.windowStart = now
		clear(l.counts)
	}

	if l.counts[key] >= l.limit {
		return false
	}
	l.counts[key]++

	return true
}

// withRateLimit rejects requests over the per-client budget with HTTP 429.
// The client key is the remote IP without the port, so one client cannot
// reset its budget by reconnecting from a new source port.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			key = r.RemoteAddr
		}

		if !h.limiter.allow(key) {
			logger.FromRequest(r).Warn().Str("client", key).Msg("rate limit exceeded")
			utils.WriteJSON(w, models.APIError{
				Code:    "rate_limited",
				Message: "too many requests",
			}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
