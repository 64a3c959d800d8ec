package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"atsmatch/internal/errors"

	"golang.org/x/time/rate"
)

// RateLimiter manages a collection of token bucket limiters keyed by client
// identity (IP address or API key).
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time
	rate     rate.Limit
	burst    int
	done     chan struct{} // Channel to signal cleanup goroutine to stop
	logger   *errors.Logger
}

// NewRateLimiter creates a new rate limiter manager.
// requestsPerMin is the number of requests allowed per minute and
// burstCapacity is the token bucket size.
func NewRateLimiter(requestsPerMin, burstCapacity int, logger *errors.Logger) *RateLimiter {
	// The rate.Limit is specified in requests per second.
	r := rate.Limit(float64(requestsPerMin) / 60.0)

	m := &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		rate:     r,
		burst:    burstCapacity,
		done:     make(chan struct{}),
		logger:   logger,
	}

	go m.cleanupRoutine(10 * time.Minute)
	return m
}

// GetLimiter retrieves or creates a limiter for a given key.
func (m *RateLimiter) GetLimiter(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, exists := m.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(m.rate, m.burst)
		m.limiters[key] = limiter
	}
	m.lastSeen[key] = time.Now()

	return limiter
}

// Allow checks if a request should be allowed for the given key
func (m *RateLimiter) Allow(key string) bool {
	return m.GetLimiter(key).Allow()
}

// GetStats returns current rate limiter statistics
func (m *RateLimiter) GetStats() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	return map[string]any{
		"active_limiters": len(m.limiters),
		"rate_per_second": float64(m.rate),
		"rate_per_minute": float64(m.rate) * 60.0,
		"burst_capacity":  m.burst,
	}
}

// cleanupRoutine periodically removes inactive limiters
func (m *RateLimiter) cleanupRoutine(cleanupInterval time.Duration) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup(cleanupInterval)
		case <-m.done:
			return
		}
	}
}

// cleanup removes limiters that haven't been used for the specified duration
func (m *RateLimiter) cleanup(evictionAge time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for key, lastSeen := range m.lastSeen {
		if now.Sub(lastSeen) > evictionAge {
			delete(m.limiters, key)
			delete(m.lastSeen, key)
		}
	}

	if m.logger != nil {
		m.logger.Debug("Rate limiter cleanup completed",
			"remaining_limiters", len(m.limiters))
	}
}

// Close stops the cleanup goroutine. Should be called when shutting down the server.
func (m *RateLimiter) Close() {
	close(m.done)
}

// rateLimitMiddleware creates rate limiting middleware using golang.org/x/time/rate.
func (s *Server) rateLimitMiddleware() func(http.HandlerFunc) http.HandlerFunc {
	if s.RateLimit == nil || !s.RateLimit.Enabled {
		return func(next http.HandlerFunc) http.HandlerFunc { return next }
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rateLimitKey := getRateLimitKey(r, s.RateLimit.ByAPIKey, s.RateLimit.ByIP)
			if rateLimitKey == "" {
				next(w, r)
				return
			}

			// Allow() is non-blocking.
			if !s.RateLimiter.Allow(rateLimitKey) {
				s.Logger.Info("Rate limit exceeded",
					"key", rateLimitKey,
					"endpoint", r.URL.Path,
					"client_ip", getClientIP(r))
				writeErrorResponse(w, "Rate limit exceeded", "Too many requests", http.StatusTooManyRequests)
				return
			}

			next(w, r)
		}
	}
}

// Helper to consolidate key extraction logic
func getRateLimitKey(r *http.Request, byAPIKey, byIP bool) string {
	if byAPIKey {
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			authHeader := r.Header.Get("Authorization")
			if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				apiKey = after
			}
		}
		if apiKey != "" {
			return "api:" + apiKey
		}
	}

	if byIP {
		return "ip:" + getClientIP(r)
	}

	return ""
}

// getClientIP extracts the client IP address from the request
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (for proxies)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := parseFirstIP(xff); ip != "" {
			return ip
		}
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if ip := net.ParseIP(xri); ip != nil {
			return xri
		}
	}

	// Fall back to RemoteAddr
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// parseFirstIP parses the first valid IP from a comma-separated list
func parseFirstIP(ips string) string {
	for ip := range strings.SplitSeq(ips, ",") {
		ip = strings.TrimSpace(ip)
		if parsed := net.ParseIP(ip); parsed != nil {
			return ip
		}
	}
	return ""
}
