package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils/response"
)

const IdempotencyHeader = "Idempotency-Key"

type IdempotencyStore interface {
	Acquire(ctx context.Context, key string) (bool, *models.IdempotentResponse, error)
	Complete(ctx context.Context, key string, resp *models.IdempotentResponse) error
	Release(ctx context.Context, key string) error
}

type recordingWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rw *recordingWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recordingWriter) Write(b []byte) (int, error) {
	rw.body.Write(b)
	return rw.ResponseWriter.Write(b)
}

// Idempotent replays the stored response when a request repeats an
// Idempotency-Key already completed by the same user. Keys are scoped per
// user and route. Server errors release the key so the client may retry.
func Idempotent(store IdempotencyStore) func(http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			header := strings.TrimSpace(r.Header.Get(IdempotencyHeader))
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			logger := LoggerFromContext(r.Context())

			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.Error(w, errors.UnauthorizedError("Authentication required"))
				return
			}

			key := principal.UserID.String() + ":" + r.Method + ":" + r.URL.Path + ":" + header

			acquired, stored, err := store.Acquire(r.Context(), key)
			if err != nil {
				logger.Error("Idempotency store unavailable, processing request", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}

			if !acquired {
				if stored != nil && stored.State == models.IdempotencyCompleted {
					logger.Info("Replaying idempotent response", slog.String("idempotencyKey", header))
					w.Header().Set("Content-Type", "application/json")
					w.Header().Set("Idempotent-Replayed", "true")
					w.WriteHeader(stored.StatusCode)
					_, _ = w.Write(stored.Body)
					return
				}

				response.Error(w, errors.DuplicateEntryError("A request with this Idempotency-Key is still in progress"))
				return
			}

			rw := &recordingWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			// the client may have gone away; the outcome is still recorded
			ctx := context.WithoutCancel(r.Context())

			if rw.statusCode >= http.StatusInternalServerError {
				if err := store.Release(ctx, key); err != nil {
					logger.Error("Failed to release idempotency key", slog.Any("error", err))
				}
				return
			}

			if err := store.Complete(ctx, key, &models.IdempotentResponse{StatusCode: rw.statusCode, Body: rw.body.Bytes()}); err != nil {
				logger.Error("Failed to store idempotent response", slog.Any("error", err))
			}
		}
	}
}
