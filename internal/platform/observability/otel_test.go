package observability

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" warning "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNilInstrumentsFallBackToGlobalProviders(t *testing.T) {
	var instruments *Instruments
	assert.NotNil(t, instruments.Tracer("test"))
	assert.NotNil(t, instruments.Meter("test"))
}

func TestInitWithoutTraceExport(t *testing.T) {
	t.Setenv("OTEL_TRACES_EXPORTER", "none")

	instruments, shutdown, err := Init(context.Background(), "delish-express-test")
	require.NoError(t, err)
	require.NotNil(t, instruments.Logger)
	assert.NotNil(t, instruments.Tracer("test"))
	require.NoError(t, shutdown(context.Background()))
}
