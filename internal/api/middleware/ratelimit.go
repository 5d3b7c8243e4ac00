package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils/response"
)

type RateLimiter interface {
	CheckPaymentRateLimit(ctx context.Context, userID string) (bool, int, int, error)
}

// PaymentRateLimit caps charge-producing requests per authenticated user.
// It must run after Authenticate. A limiter outage lets the request through.
func PaymentRateLimit(limiter RateLimiter) func(http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			logger := LoggerFromContext(r.Context())

			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.Error(w, errors.UnauthorizedError("Authentication required"))
				return
			}

			allowed, remaining, retryAfter, err := limiter.CheckPaymentRateLimit(r.Context(), principal.UserID.String())
			if err != nil {
				logger.Error("Rate limiter unavailable, allowing request", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				response.Error(w, errors.TooManyRequestsError("Too many payment attempts, try again later"))
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			next.ServeHTTP(w, r)
		}
	}
}
