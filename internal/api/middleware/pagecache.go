package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// PageCache is a whole-page cache for anonymous GET requests, backed by
// redis. It sits entirely outside the core: cached responses may be
// stale for up to the TTL after a write, which callers accept by
// opting a route into it.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a whole-page cache with the given TTL
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

// Middleware serves cached page bodies for anonymous GET requests and
// fills the cache on miss. Logged-in viewers always bypass the cache:
// their pages carry personalized chrome.
func (c *PageCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || GetViewer(r) != nil {
			next.ServeHTTP(w, r)
			return
		}

		key := "pagecache:" + r.URL.RequestURI()

		cached, err := c.client.Get(r.Context(), key).Bytes()
		if err == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("X-Page-Cache", "hit")
			_, _ = w.Write(cached)
			return
		}
		if err != redis.Nil {
			// Cache trouble must never take the page down
			slog.Warn("page cache read failed", "key", key, "error", err)
		}

		recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		if recorder.status == http.StatusOK {
			if err := c.client.Set(r.Context(), key, recorder.body.Bytes(), c.ttl).Err(); err != nil {
				slog.Warn("page cache write failed", "key", key, "error", err)
			}
		}
	})
}

// responseRecorder tees the response body so it can be cached
type responseRecorder struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
