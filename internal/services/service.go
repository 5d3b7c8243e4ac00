package service

import (
	"database/sql"
	"errors"
	"time"

	appErrors "github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/aaravmahajanofficial/marketplace-checkout/internal/services")

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}

	return c()
}

// notFoundOr maps sql.ErrNoRows to a NOT_FOUND error and anything else to a
// DATABASE_ERROR carrying the cause.
func notFoundOr(err error, notFound, failed string) *appErrors.AppError {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFoundError(notFound).WithError(err)
	}

	return appErrors.DatabaseError(failed).WithError(err)
}

// asAppError passes AppErrors through and wraps everything else as a DATABASE_ERROR.
func asAppError(err error, message string) error {
	if _, ok := appErrors.IsAppError(err); ok {
		return err
	}

	return appErrors.DatabaseError(message).WithError(err)
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func decimalOf(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
