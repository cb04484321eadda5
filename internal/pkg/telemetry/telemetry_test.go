package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func TestNewResource(t *testing.T) {
	t.Run("should carry the service name attribute", func(t *testing.T) {
		// Execute
		res, err := newResource("txledger-test")

		// Assert
		require.NoError(t, err)
		require.NotNil(t, res)

		found := false
		for _, attr := range res.Attributes() {
			if attr.Key == semconv.ServiceNameKey {
				assert.Equal(t, "txledger-test", attr.Value.AsString())
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("should accept an empty service name", func(t *testing.T) {
		res, err := newResource("")
		require.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestLoggerProvider(t *testing.T) {
	t.Run("should be nil before initialization", func(t *testing.T) {
		// Setup
		original := loggerProvider
		loggerProvider = nil
		defer func() { loggerProvider = original }()

		// Execute / Assert
		assert.Nil(t, LoggerProvider())
	})

	t.Run("should expose the configured provider", func(t *testing.T) {
		// Setup
		original := loggerProvider
		lp := sdklog.NewLoggerProvider()
		loggerProvider = lp
		defer func() {
			loggerProvider = original
			_ = lp.Shutdown(context.Background())
		}()

		// Execute / Assert
		assert.NotNil(t, LoggerProvider())
	})
}

func TestShutdown(t *testing.T) {
	t.Run("should shut down all providers without error", func(t *testing.T) {
		// Setup
		mp := sdkmetric.NewMeterProvider()
		tp := sdktrace.NewTracerProvider()
		lp := sdklog.NewLoggerProvider()

		var shutdown ShutdownFunc = func(ctx context.Context) error {
			mpErr := mp.Shutdown(ctx)
			tpErr := tp.Shutdown(ctx)
			lpErr := lp.Shutdown(ctx)
			if mpErr != nil {
				return mpErr
			}
			if tpErr != nil {
				return tpErr
			}
			return lpErr
		}

		ctx, cancel := context.WithTimeout(t.Context(), time.Second)
		defer cancel()

		// Execute / Assert
		assert.NoError(t, shutdown(ctx))
	})
}
