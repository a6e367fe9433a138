package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"cover-quote/core/quote"
	"cover-quote/core/request"
	"cover-quote/internal/errors"
)

func newTestEngine(level zapcore.Level) (*Engine, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	e := New(nil, zap.New(core))

	clock := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	e.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}
	e.newID = func() string { return "req-1" }
	return e, logs
}

func TestRun(t *testing.T) {
	e, logs := newTestEngine(zapcore.DebugLevel)

	result, err := e.Run(context.Background(), &request.Request{
		RiskScore:  250.75,
		Bundles:    []string{"Jewelry"},
		NamedItems: []string{"FujiBike:Bicycles:500", "Phone:Electronics:200"},
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", result.RequestID)
	assert.Equal(t, quote.RiskQuotient(250.75), result.RiskQuotient)
	assert.Len(t, result.Covers, 3)
	assert.Equal(t, 15, result.Covers[quote.BundleIdentifier+"Jewelry"].Len())
	assert.Equal(t, "2026-10-14T09:00:00Z", result.Metadata.Timestamp)
	assert.Equal(t, "1ms", result.Metadata.Duration)
	assert.Equal(t, Version, result.Metadata.Version)
	assert.Len(t, result.Metadata.Fingerprint, 16)

	assert.Equal(t, 1, logs.FilterMessage("Generating quotes").Len())
	assert.Equal(t, 3, logs.FilterMessage("Cover priced").Len())
	done := logs.FilterMessage("Quotes generated").All()
	require.Len(t, done, 1)
	assert.Equal(t, "req-1", done[0].ContextMap()["request_id"])
	assert.Equal(t, int64(3), done[0].ContextMap()["covers"])
}

func TestRunFingerprintIsStable(t *testing.T) {
	e, _ := newTestEngine(zapcore.InfoLevel)
	req := &request.Request{RiskScore: 300, Bundles: []string{"General"}, NamedItems: []string{"Phone:Electronics:200"}}

	first, err := e.Run(context.Background(), req)
	require.NoError(t, err)
	second, err := e.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Metadata.Fingerprint, second.Metadata.Fingerprint)
	for id, set := range first.Covers {
		assert.True(t, set.Equal(second.Covers[id]), id)
	}
}

func TestRunRejectsInvalidRequest(t *testing.T) {
	e, logs := newTestEngine(zapcore.InfoLevel)

	result, err := e.Run(context.Background(), &request.Request{RiskScore: 100})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsType(err, errors.TypeInvalidRequest))
	assert.Contains(t, err.Error(), "no cover has been requested")

	rejected := logs.FilterMessage("Quote request rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zapcore.InfoLevel, rejected[0].Level)
}

func TestRunHonoursCancelledContext(t *testing.T) {
	e, _ := newTestEngine(zapcore.InfoLevel)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Run(ctx, &request.Request{RiskScore: 100, Bundles: []string{"General"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunNilRequest(t *testing.T) {
	e, _ := newTestEngine(zapcore.InfoLevel)
	_, err := e.Run(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInternal))
}

func TestNewDefaults(t *testing.T) {
	e := New(nil, nil)
	result, err := e.Run(context.Background(), &request.Request{RiskScore: 500, Bundles: []string{"General"}})
	require.NoError(t, err)
	assert.NotEmpty(t, result.RequestID)
	assert.Equal(t, 12, result.Covers[quote.BundleIdentifier+"General"].Len())
}
