package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils/response"
)

// authenticated returns the caller and a logger scoped to it. When the request
// carries no principal a 401 has been written and ok is false.
func authenticated(w http.ResponseWriter, r *http.Request) (models.Principal, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized access attempt", slog.String("path", r.URL.Path))
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return models.Principal{}, logger, false
	}

	return principal, logger.With(slog.String("userId", principal.UserID.String())), true
}
