package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/onebluedot/site/internal/api/types"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

// RateLimiter is an IP based token bucket limiter.
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu       sync.Mutex
	visitors map[string]*limiterEntry
}

// NewRateLimiter allows rps requests per second per client with the given
// burst. Idle clients are forgotten after ten minutes.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{rps: rate.Limit(rps), burst: burst, visitors: map[string]*limiterEntry{}}
	go rl.gc(5*time.Minute, 10*time.Minute)
	return rl
}

func (rl *RateLimiter) gc(every, idle time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for range t.C {
		rl.mu.Lock()
		for k, v := range rl.visitors {
			if time.Since(v.last) > idle {
				delete(rl.visitors, k)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow reports whether the client at ip may proceed.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	le, ok := rl.visitors[ip]
	if !ok {
		le = &limiterEntry{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = le
	}
	le.last = time.Now()
	return le.limiter.Allow()
}

// Handler rejects over-limit requests with 429.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(clientIP(r)) {
			types.WriteErrorStr(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
