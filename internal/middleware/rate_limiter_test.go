package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	rl := NewRateLimiter(store, 5, time.Minute)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		assert.True(t, rl.Allow(ctx, "10.0.0.1"), "hit %d should be allowed", i)
	}
	assert.False(t, rl.Allow(ctx, "10.0.0.1"), "sixth hit should be blocked")
	assert.True(t, rl.Allow(ctx, "10.0.0.2"), "other clients keep their own quota")
}

func TestRateLimiter_WindowResets(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	rl := NewRateLimiter(store, 1, 20*time.Millisecond)
	ctx := context.Background()

	require.True(t, rl.Allow(ctx, "client"))
	require.False(t, rl.Allow(ctx, "client"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Allow(ctx, "client"))
}

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	rl := NewRateLimiter(failingStore{}, 1, time.Minute)
	assert.True(t, rl.Allow(context.Background(), "client"))
	assert.True(t, rl.Allow(context.Background(), "client"))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Incr(context.Background(), "shared", time.Minute)
		}()
	}
	wg.Wait()

	count, err := store.Incr(context.Background(), "shared", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(51), count)
}

func TestMemoryStore_EvictExpired(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Stop()

	ctx := context.Background()
	_, _ = store.Incr(ctx, "short", time.Millisecond)
	_, _ = store.Incr(ctx, "long", time.Hour)

	store.evictExpired(time.Now().Add(time.Second))
	assert.Equal(t, 1, store.Len())

	store.Reset()
	assert.Equal(t, 0, store.Len())

	// Stop is safe to call twice.
	store.Stop()
}

func TestRedisStore_Incr(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisStore(client)
	ctx := context.Background()

	count, err := store.Incr(ctx, "10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.Incr(ctx, "10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assert.True(t, mr.Exists("ratelimit:10.0.0.1"))
	ttl := mr.TTL("ratelimit:10.0.0.1")
	assert.True(t, ttl > 0 && ttl <= time.Minute, "ttl = %v", ttl)

	mr.FastForward(time.Minute + time.Second)
	count, err = store.Incr(ctx, "10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisStore_Incr_RestoresMissingExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	// Counter left behind without a TTL.
	require.NoError(t, mr.Set("ratelimit:10.0.0.2", "7"))
	require.Equal(t, time.Duration(0), mr.TTL("ratelimit:10.0.0.2"))

	store := NewRedisStore(client)
	count, err := store.Incr(context.Background(), "10.0.0.2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(8), count)

	ttl := mr.TTL("ratelimit:10.0.0.2")
	assert.True(t, ttl > 0 && ttl <= time.Minute, "ttl = %v", ttl)

	mr.FastForward(time.Minute + time.Second)
	count, err = store.Incr(context.Background(), "10.0.0.2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRateLimit_Middleware(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	limited := 0
	handler := RateLimit(NewRateLimiter(store, 2, time.Minute), func() { limited++ })(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/applications", nil)
		req.RemoteAddr = "192.168.1.10:54321"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests {
			assert.JSONEq(t, `{"error":"`+RateLimitMessage+`"}`, rec.Body.String())
		}
	}

	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1, limited)
}

func TestClientID(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		expected   string
	}{
		{"Forwarded chain", "203.0.113.7, 10.0.0.1", "10.0.0.1:80", "203.0.113.7"},
		{"Single forwarded", "203.0.113.8", "", "203.0.113.8"},
		{"Remote address", "", "192.168.1.10:54321", "192.168.1.10"},
		{"Remote without port", "", "192.168.1.10", "192.168.1.10"},
		{"Nothing known", "", "", "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.expected, ClientID(req))
		})
	}
}
