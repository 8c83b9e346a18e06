package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, InfoLevel, ParseLevel(" INFO "))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, WarnLevel, ParseLevel("nonsense"))
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(Config{Level: WarnLevel, Component: "test"}, &buf)

	l.Info("hidden")
	l.Warn("shown", "feature", "bg")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "feature=bg")
}

func TestWithComponentAddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(Config{Level: DebugLevel, Format: "json"}, &buf).WithComponent("render")

	l.Debug("hello")

	assert.Contains(t, buf.String(), `"component":"render"`)
	assert.Equal(t, "render", l.Component())
}

func TestLogOperationReturnsError(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(Config{Level: DebugLevel}, &buf)

	boom := errors.New("boom")
	err := l.LogOperation("assemble", func() error { return boom })

	require.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "Operation failed")
}

func TestGlobalLoggerFallback(t *testing.T) {
	prev := globalLogger
	defer func() { globalLogger = prev }()

	globalLogger = nil
	l := GetGlobalLogger()
	require.NotNil(t, l)
	assert.Equal(t, "styler", GetStylerLogger().Component())
}
