package telemetry

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type memoryLogExporter struct {
	mu      sync.Mutex
	records []sdklog.Record
}

func (e *memoryLogExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}
	return nil
}

func (e *memoryLogExporter) Shutdown(context.Context) error   { return nil }
func (e *memoryLogExporter) ForceFlush(context.Context) error { return nil }

func (e *memoryLogExporter) bodies() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.records))
	for i, r := range e.records {
		out[i] = r.Body().AsString()
	}
	return out
}

func TestLoggerProvider_Disabled(t *testing.T) {
	lp, err := NewLoggerProvider(context.Background(), LogsConfig{})
	require.NoError(t, err)

	assert.False(t, lp.IsEnabled())
	assert.False(t, lp.Core(zapcore.DebugLevel).Enabled(zapcore.ErrorLevel))
	assert.NoError(t, lp.ForceFlush(context.Background()))
	assert.NoError(t, lp.Shutdown(context.Background()))
}

func TestLoggerProvider_BridgesZap(t *testing.T) {
	ctx := context.Background()
	exporter := &memoryLogExporter{}
	lp, err := NewLoggerProviderWithExporter(LogsConfig{ServiceName: "mkboutique-test"}, exporter)
	require.NoError(t, err)
	t.Cleanup(func() { _ = lp.Shutdown(ctx) })

	logger := zap.New(lp.Core(zapcore.InfoLevel))
	logger.Debug("filtered")
	logger.Info("Reservation created", zap.Int("id_reservation", 4))
	logger.With(zap.String("component", "auth")).Warn("Login failed")
	require.NoError(t, lp.ForceFlush(ctx))

	assert.Equal(t, []string{"Reservation created", "Login failed"}, exporter.bodies())
}
