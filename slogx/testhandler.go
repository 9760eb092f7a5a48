// Package slogx provides [slog.Handler] implementations for test and library code.
package slogx

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Logger is the subset of [testing.TB] needed by [TestHandler].
type Logger interface {
	Helper()
	Logf(format string, args ...any)
}

var _ slog.Handler = (*TestHandler)(nil)

// TestHandler writes each record as a single line to a test's log.
// Records are formatted with [slog.TextHandler], so attributes and groups work as expected.
type TestHandler struct {
	tb    Logger
	level slog.Leveler
	mux   *sync.Mutex
	buf   *strings.Builder
	impl  slog.Handler
}

// NewTestHandler creates a [TestHandler] logging to tb at the given minimum level.
func NewTestHandler(tb Logger, level slog.Leveler) *TestHandler {
	if tb == nil {
		panic("nil test logger")
	}
	if level == nil {
		level = slog.LevelInfo
	}
	buf := new(strings.Builder)
	return &TestHandler{
		tb:    tb,
		level: level,
		mux:   new(sync.Mutex),
		buf:   buf,
		impl: slog.NewTextHandler(buf, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				// The test log already carries timing information.
				if len(groups) == 0 && a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		}),
	}
}

func (h *TestHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *TestHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mux.Lock()
	defer h.mux.Unlock()
	h.buf.Reset()
	if err := h.impl.Handle(ctx, record); err != nil {
		return err
	}
	h.tb.Helper()
	h.tb.Logf("%s", strings.TrimSuffix(h.buf.String(), "\n"))
	return nil
}

func (h *TestHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.impl = h.impl.WithAttrs(attrs)
	return &cp
}

func (h *TestHandler) WithGroup(name string) slog.Handler {
	cp := *h
	cp.impl = h.impl.WithGroup(name)
	return &cp
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
