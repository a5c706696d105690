package linklog

import (
	"errors"
	"fmt"
	"testing"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xgx-io/errlink"
)

// loggerStub records Log calls.
type loggerStub struct {
	LogCalled func(level logger.LogLevel, message string, args ...interface{})
}

func (l *loggerStub) Log(logLevel logger.LogLevel, message string, args ...interface{}) {
	if l.LogCalled != nil {
		l.LogCalled(logLevel, message, args...)
	}
}

func (l *loggerStub) LogLine(_ *logger.LogLine) {}

func (l *loggerStub) Trace(message string, args ...interface{}) {
	l.Log(logger.LogTrace, message, args...)
}

func (l *loggerStub) Debug(message string, args ...interface{}) {
	l.Log(logger.LogDebug, message, args...)
}

func (l *loggerStub) Info(message string, args ...interface{}) {
	l.Log(logger.LogInfo, message, args...)
}

func (l *loggerStub) Warn(message string, args ...interface{}) {
	l.Log(logger.LogWarning, message, args...)
}

func (l *loggerStub) Error(message string, args ...interface{}) {
	l.Log(logger.LogError, message, args...)
}

func (l *loggerStub) LogIfError(err error, args ...interface{}) {
	if err != nil {
		l.Log(logger.LogError, err.Error(), args...)
	}
}

func (l *loggerStub) SetLevel(_ logger.LogLevel) {}

func (l *loggerStub) GetLevel() logger.LogLevel { return logger.LogTrace }

func (l *loggerStub) IsInterfaceNil() bool { return l == nil }

type call struct {
	level   logger.LogLevel
	message string
	args    []interface{}
}

func recorder(calls *[]call) *loggerStub {
	return &loggerStub{
		LogCalled: func(level logger.LogLevel, message string, args ...interface{}) {
			*calls = append(*calls, call{level: level, message: message, args: args})
		},
	}
}

// fieldsMap turns alternating key/value args into a map.
func fieldsMap(t *testing.T, args []interface{}) map[string]interface{} {
	t.Helper()
	require.Zero(t, len(args)%2, "odd number of args: %v", args)
	out := make(map[string]interface{}, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		require.True(t, ok, "non-string key %v", args[i])
		out[key] = args[i+1]
	}
	return out
}

func TestReport_NilErrorLogsNothing(t *testing.T) {
	var calls []call
	Report(recorder(&calls), logger.LogError, "ignored", nil)
	ReportIfError(recorder(&calls), "ignored", nil)
	assert.Empty(t, calls)
}

func TestReport_ChainFields(t *testing.T) {
	var calls []call
	err := errlink.New("Underlying error.").Link("Higher level error.")

	Report(recorder(&calls), logger.LogWarning, "request failed", err)

	require.Len(t, calls, 1)
	assert.Equal(t, logger.LogWarning, calls[0].level)
	assert.Equal(t, "request failed", calls[0].message)

	fields := fieldsMap(t, calls[0].args)
	assert.Equal(t, "Higher level error.: Underlying error.", fields["error"])
	assert.Equal(t, 2, fields["depth"])
	assert.Equal(t, "Higher level error.", fields["frame0"])
	assert.Equal(t, "Underlying error.", fields["frame1"])
	assert.NotContains(t, fields, "stack")
}

func TestReport_TraceAddsStack(t *testing.T) {
	var calls []call
	err := fmt.Errorf("boundary: %w", errlink.New(100))

	Report(recorder(&calls), logger.LogTrace, "trace", err)

	require.Len(t, calls, 1)
	fields := fieldsMap(t, calls[0].args)
	assert.Equal(t, 1, fields["depth"])
	assert.Equal(t, "100", fields["frame0"])
	require.Contains(t, fields, "stack")
	assert.Contains(t, fields["stack"], "TestReport_TraceAddsStack")
}

func TestReportIfError_ForeignError(t *testing.T) {
	var calls []call
	ReportIfError(recorder(&calls), "close failed", errors.New("plain"))

	require.Len(t, calls, 1)
	assert.Equal(t, logger.LogError, calls[0].level)
	assert.Equal(t, []interface{}{"error", "plain"}, calls[0].args)
}

func TestReport_NilLoggerFallsBackToDefault(t *testing.T) {
	var nilStub *loggerStub
	assert.NotPanics(t, func() {
		Report(nilStub, logger.LogDebug, "fallback", errlink.New("x"))
		Report(nil, logger.LogDebug, "fallback", errlink.New("x"))
	})
	assert.NotNil(t, Default())
}

func TestFields_Nil(t *testing.T) {
	assert.Nil(t, Fields(nil, true))
}
