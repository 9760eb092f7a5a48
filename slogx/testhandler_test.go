package slogx

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Helper() {}

func (l *recordingLogger) Logf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestTestHandler_Handle(t *testing.T) {
	rec := new(recordingLogger)
	log := slog.New(NewTestHandler(rec, slog.LevelInfo))
	log = log.With("session", "abc")
	log.Debug("Dropped")
	log.WithGroup("failure").Info("Captured", "kind", "expect")

	require.Len(t, rec.lines, 1)
	line := rec.lines[0]
	assert.NotContains(t, line, "time=")
	assert.Contains(t, line, "msg=Captured")
	assert.Contains(t, line, "session=abc")
	assert.Contains(t, line, "failure.kind=expect")
}

func TestTestHandler_NilLogger(t *testing.T) {
	assert.Panics(t, func() {
		NewTestHandler(nil, nil)
	})
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() {
		log.With("a", 1).WithGroup("g").Error("Nothing")
	})
}
