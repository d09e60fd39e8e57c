package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/iho/splitledger/internal/usecase"
)

const (
	// IdempotencyKeyHeader is the header name for idempotency keys.
	IdempotencyKeyHeader = "Idempotency-Key"
	// DefaultIdempotencyTTL is used when no TTL is configured.
	DefaultIdempotencyTTL = 24 * time.Hour

	pendingMarker = "processing"
)

// cachedResponse is the stored form of a completed request.
type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body,omitempty"`
}

// IdempotencyMiddleware replays completed mutating requests that carry the same key.
type IdempotencyMiddleware struct {
	store usecase.IdempotencyStore
	ttl   time.Duration
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware.
func NewIdempotencyMiddleware(store usecase.IdempotencyStore, ttl time.Duration) *IdempotencyMiddleware {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyMiddleware{store: store, ttl: ttl}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isMutating(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(IdempotencyKeyHeader)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}
		// the same key on another endpoint is a different request
		key = r.Method + " " + r.URL.Path + " " + key

		exists, stored, err := m.store.CheckAndSet(r.Context(), key, nil, m.ttl)
		if err != nil {
			http.Error(w, "idempotency check failed", http.StatusInternalServerError)
			return
		}

		if exists && string(stored) == pendingMarker {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "request with this idempotency key is in progress", http.StatusConflict)
			return
		}

		if exists && stored != nil {
			var cached cachedResponse
			if err := json.Unmarshal(stored, &cached); err == nil && cached.Status != 0 {
				w.Header().Set("X-Idempotency-Replay", "true")
				if len(cached.Body) > 0 {
					w.Header().Set("Content-Type", "application/json")
				}
				w.WriteHeader(cached.Status)
				w.Write(cached.Body)
				return
			}
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode < 200 || recorder.statusCode >= 300 {
			m.store.Release(r.Context(), key)
			return
		}

		payload, err := json.Marshal(cachedResponse{
			Status: recorder.statusCode,
			Body:   bytes.TrimSpace(recorder.body.Bytes()),
		})
		if err != nil {
			m.store.Release(r.Context(), key)
			return
		}
		m.store.Update(r.Context(), key, payload, m.ttl)
	})
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
