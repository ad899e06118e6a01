package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mroshb/edu_admissions/pkg/logger"
)

// RateLimitMessage is returned to clients that exceed their quota.
const RateLimitMessage = "Too many requests. Please try again later."

// CounterStore counts hits per key inside a fixed window. The window starts
// with the first hit for a key; Incr returns the count including this hit.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter allows at most max hits per client within window
type RateLimiter struct {
	store  CounterStore
	max    int
	window time.Duration
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(store CounterStore, max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		store:  store,
		max:    max,
		window: window,
	}
}

// Allow records a hit for id and reports whether it is within the limit.
// Store failures let the request through.
func (rl *RateLimiter) Allow(ctx context.Context, id string) bool {
	count, err := rl.store.Incr(ctx, id, rl.window)
	if err != nil {
		logger.Warn("Rate limit store unavailable, allowing request", "client", id, "error", err)
		return true
	}
	return count <= int64(rl.max)
}

// RateLimit rejects requests over the limit with 429. onLimited, if set, runs
// for every rejected request.
func RateLimit(rl *RateLimiter, onLimited func()) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ClientID(r)
			if !rl.Allow(r.Context(), id) {
				logger.Warn("Rate limit exceeded", "client", id, "path", r.URL.Path)
				if onLimited != nil {
					onLimited()
				}
				writeError(w, http.StatusTooManyRequests, RateLimitMessage)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientID identifies the caller by the first X-Forwarded-For entry,
// falling back to the connection address.
func ClientID(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
			return host
		}
		return r.RemoteAddr
	}

	return "anonymous"
}

// MemoryStore implements CounterStore in process memory
type MemoryStore struct {
	counters map[string]*counter
	mu       sync.Mutex
	stop     chan struct{}
	once     sync.Once
}

type counter struct {
	hits      int64
	resetTime time.Time
}

// NewMemoryStore creates a store and starts its cleanup goroutine.
// Call Stop to end it.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		counters: make(map[string]*counter),
		stop:     make(chan struct{}),
	}

	go s.cleanup(cleanupInterval)

	return s
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	c, exists := s.counters[key]
	if !exists || !now.Before(c.resetTime) {
		s.counters[key] = &counter{hits: 1, resetTime: now.Add(window)}
		return 1, nil
	}

	c.hits++
	return c.hits, nil
}

// Stop ends the cleanup goroutine
func (s *MemoryStore) Stop() {
	s.once.Do(func() { close(s.stop) })
}

// Len returns the number of tracked keys
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.counters)
}

// cleanup removes expired entries
func (s *MemoryStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictExpired(time.Now())
		}
	}
}

func (s *MemoryStore) evictExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, c := range s.counters {
		if !now.Before(c.resetTime) {
			delete(s.counters, key)
		}
	}
}

// Reset clears all counters (useful for testing)
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters = make(map[string]*counter)
}
