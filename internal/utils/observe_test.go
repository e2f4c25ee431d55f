package utils

import (
	"Groeneweide-Backend/domain"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEndOperation_CountsAndLogsByKind(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	before := testutil.ToFloat64(RuleRejections.WithLabelValues("observe_test", domain.KindInvalidReference))

	_, span := StartOperation(context.Background(), "observe_test", "create")
	EndOperation(span, logger, "observe_test", "create", domain.ErrInvalidLocker)

	_, span = StartOperation(context.Background(), "observe_test", "create")
	EndOperation(span, logger, "observe_test", "create", errors.New("socket closed"))

	_, span = StartOperation(context.Background(), "observe_test", "create")
	EndOperation(span, logger, "observe_test", "create", nil)

	after := testutil.ToFloat64(RuleRejections.WithLabelValues("observe_test", domain.KindInvalidReference))
	assert.Equal(t, 1.0, after-before)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, domain.KindUnknown, entries[1].ContextMap()["kind"])
}

func TestNewLogger_UnknownLevelFallsBack(t *testing.T) {
	logger, err := NewLogger("loud")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestSetupTracing_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), "groeneweide", "")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
