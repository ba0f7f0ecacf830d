package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ReturnsUsableLogger(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)

	// must not panic
	l.Debug().Msg("debug message")
	l.Info().Str("key", "value").Msg("info message")
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	l.Error().Msg("should go nowhere")
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)

	l.Info().Msg("global logger fallback")
}

func TestFromRequest_UsesContextLogger(t *testing.T) {
	nop := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(nop.Logger.WithContext(req.Context()))

	l := FromRequest(req)
	require.NotNil(t, l)
}
