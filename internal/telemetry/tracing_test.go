package telemetry_test

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/config"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracer(t *testing.T) {
	t.Run("Success - No Exporter", func(t *testing.T) {
		// Arrange
		cfg := &config.Config{Env: "test", Otel: config.Otel{ServiceName: "marketplace-checkout", SamplerRatio: 1}}

		// Act
		shutdown, err := telemetry.InitTracer(t.Context(), cfg)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, shutdown)

		_, span := otel.Tracer("test").Start(t.Context(), "probe")
		assert.True(t, span.SpanContext().IsValid())
		span.End()

		assert.NoError(t, shutdown(t.Context()))
	})

	t.Run("Success - With Exporter", func(t *testing.T) {
		cfg := &config.Config{Env: "test", Otel: config.Otel{ServiceName: "marketplace-checkout", ExporterEndpoint: "http://localhost:4318/v1/traces", SamplerRatio: 0.5}}

		shutdown, err := telemetry.InitTracer(t.Context(), cfg)

		require.NoError(t, err)
		require.NotNil(t, shutdown)
		t.Cleanup(func() { _ = shutdown(context.Background()) })
	})
}
