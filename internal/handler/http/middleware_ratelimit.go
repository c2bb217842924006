package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/promptkeep/prompt-keeper/internal/config"
	"github.com/promptkeep/prompt-keeper/internal/logger"
)

// rateLimiterTTL is how long an idle origin keeps its limiter before
// the cleanup pass drops it.
const (
	rateLimiterTTL             = time.Hour
	rateLimiterCleanupInterval = 10 * time.Minute
)

// RateLimiter admits at most a fixed number of requests per origin IP
// within a sliding window, keeping one token bucket per IP. Idle
// entries are removed by a background cleanup goroutine.
type RateLimiter struct {
	limiters  map[string]*rateLimiterEntry
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	stopClean chan struct{}
}

type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter builds a limiter that admits cfg.Max requests per
// cfg.Window for each origin.
func NewRateLimiter(cfg config.RateLimit) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rateLimiterEntry),
		rate:      rate.Every(cfg.Window / time.Duration(cfg.Max)),
		burst:     cfg.Max,
		stopClean: make(chan struct{}),
	}
}

// Allow reports whether a request from the given IP may proceed.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	entry, exists := rl.limiters[ip]
	if !exists {
		entry = &rateLimiterEntry{
			limiter: rate.NewLimiter(rl.rate, rl.burst),
		}
		rl.limiters[ip] = entry
	}
	entry.lastAccess = time.Now()
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.Allow()
}

// Run starts the background cleanup goroutine that removes origins
// idle longer than rateLimiterTTL. It implements [workers.Worker].
func (rl *RateLimiter) Run() {
	go rl.startCleanup(rateLimiterCleanupInterval)
}

func (rl *RateLimiter) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopClean:
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := time.Now().Add(-rateLimiterTTL)
	for ip, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, ip)
		}
	}
}

// Stop terminates the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopClean)
}

// withRateLimit rejects requests with HTTP 429 once the origin IP has
// exhausted its budget in the limiter.
func (h *Handler) withRateLimit(rl *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !rl.Allow(ip) {
				logger.FromRequest(r).Warn().Str("ip", ip).Msg("rate limit exceeded")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the origin address of a request, ignoring any
// forwarding headers: the limiter keys on the direct peer.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
