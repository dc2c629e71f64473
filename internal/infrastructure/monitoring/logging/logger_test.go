package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLoggerFromCore(core), logs
}

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "f", Value: 0.5}, Float64("f", 0.5))
	assert.Equal(t, Field{Key: "n64", Value: int64(9)}, Int64("n64", 9))
	assert.Equal(t, Field{Key: "d", Value: time.Second}, Duration("d", time.Second))
}

func TestErrField(t *testing.T) {
	assert.Equal(t, "<nil>", Err(nil).Value)
	assert.Equal(t, "boom", Err(errors.New("boom")).Value)
	assert.Equal(t, "error", Err(nil).Key)
}

func TestLogger_Levels(t *testing.T) {
	log, logs := newObservedLogger(zapcore.DebugLevel)

	log.Debug("dbg")
	log.Info("inf", String("k", "v"))
	log.Warn("wrn")
	log.Error("err", Err(errors.New("boom")))

	require.Equal(t, 4, logs.Len())
	entries := logs.All()
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "inf", entries[1].Message)
	assert.Equal(t, "v", entries[1].ContextMap()["k"])
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	log, logs := newObservedLogger(zapcore.WarnLevel)

	log.Debug("dbg")
	log.Info("inf")
	log.Warn("wrn")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "wrn", logs.All()[0].Message)
}

func TestLogger_With(t *testing.T) {
	log, logs := newObservedLogger(zapcore.InfoLevel)

	child := log.With(String("dataset_id", "abc"))
	child.Info("imported")
	log.Info("plain")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["dataset_id"])
	// Parent must not carry the child's fields.
	assert.NotContains(t, logs.All()[1].ContextMap(), "dataset_id")
}

func TestLogger_Named(t *testing.T) {
	log, logs := newObservedLogger(zapcore.InfoLevel)

	log.Named("http").Info("request")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "http", logs.All()[0].LoggerName)
}

func TestNewLogger_Defaults(t *testing.T) {
	log, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNewLogger_InvalidOutputPath(t *testing.T) {
	_, err := NewLogger(LogConfig{OutputPaths: []string{"/nonexistent-dir-xyz/out.log"}})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	// Must not panic and must return usable children.
	log.Info("ignored")
	log.With(String("k", "v")).Named("x").Error("ignored")
}

//Personal.AI order the ending
