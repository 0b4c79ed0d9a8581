package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/dfe-complete/complete-api/internal/telemetry"
)

func TestSetup_NoEndpointIsNoop(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), "complete-api", "")

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}

func TestSetup_WithEndpoint(t *testing.T) {
	// The exporter connects lazily, so an unreachable collector is fine here.
	shutdown, err := telemetry.Setup(context.Background(), "complete-api", "http://127.0.0.1:4318")

	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
