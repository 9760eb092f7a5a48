package soft

import (
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saylorsolutions/softassert/env"
	"github.com/saylorsolutions/softassert/slogx"
	"github.com/saylorsolutions/softassert/syncx"
)

// Session holds the failures captured by soft blocks until they're flushed.
//
// A Session is safe for concurrent use, but failures are reported in the order they're captured, so interleaved captures from parallel goroutines are reported interleaved.
// Use one Session per test.
type Session struct {
	id           uuid.UUID
	classifier   *Classifier
	log          *slog.Logger
	strict       bool
	awaitTimeout time.Duration

	mux     sync.Mutex
	records []*Record
}

// New creates a [Session].
// Defaults are read from the environment, and may be overridden with opts.
func New(opts ...Option) *Session {
	s := &Session{
		id:         uuid.New(),
		classifier: NewClassifier(DefaultKinds()...),
		log:        slogx.Discard(),
	}
	envDefaults(s)
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session", s.id.String())
	return s
}

// TB is the part of [testing.TB] that [ForTest] needs.
type TB interface {
	Helper()
	Cleanup(func())
	Errorf(format string, args ...any)
	Logf(format string, args ...any)
}

// ForTest creates a [Session] scoped to a test.
// The session is flushed when the test finishes, and any failure is reported with tb.Errorf.
// If SOFTASSERT_LOG is set to a level, then session logs are written to the test log.
func ForTest(tb TB, opts ...Option) *Session {
	tb.Helper()
	if level, ok := env.Level(EnvLog); ok {
		opts = append([]Option{WithLogger(slog.New(slogx.NewTestHandler(tb, level)))}, opts...)
	}
	s := New(opts...)
	tb.Cleanup(func() {
		tb.Helper()
		if err := s.Flush(); err != nil {
			tb.Errorf("%s", err.Error())
		}
	})
	return s
}

// ID returns the unique ID of the session, which is also attached to its logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Strict reports whether capturing is turned off.
func (s *Session) Strict() bool {
	return s.strict
}

// Classifier returns the classifier used by the session.
func (s *Session) Classifier() *Classifier {
	return s.classifier
}

// Pending returns the number of captured failures that haven't been flushed.
func (s *Session) Pending() int {
	return syncx.LockFuncT(&s.mux, func() int {
		return len(s.records)
	})
}

// Records returns a snapshot of the captured failures that haven't been flushed.
func (s *Session) Records() []*Record {
	return syncx.LockFuncT(&s.mux, func() []*Record {
		out := make([]*Record, len(s.records))
		copy(out, s.records)
		return out
	})
}

// Capture records err if it's a recognized failure, and reports whether it was captured.
// Unrecognized errors are left to the caller, and nil is never captured.
// Nothing is captured in strict mode.
func (s *Session) Capture(err error) bool {
	if err == nil {
		return false
	}
	return s.accept(err, debug.Stack())
}

// accept captures val if the classifier recognizes it and the session isn't strict.
func (s *Session) accept(val any, stack []byte) bool {
	kind, ok := s.classifier.Classify(val)
	if !ok {
		s.log.Debug("Propagating unrecognized failure", "value", val)
		return false
	}
	if s.strict {
		s.log.Debug("Propagating failure in strict mode", "kind", kind.Name)
		return false
	}
	rec := newRecord(val.(error), kind.Name, stack)
	syncx.LockFunc(&s.mux, func() {
		s.records = append(s.records, rec)
	})
	s.log.Debug("Captured assertion failure", "kind", kind.Name, "message", firstLine(rec.Message()))
	return true
}

// recoverFailure must be deferred directly.
// Recognized failures are captured, and anything else is raised again unchanged.
func (s *Session) recoverFailure() {
	r := recover()
	if r == nil {
		return
	}
	s.handlePanic(r, debug.Stack())
}

func (s *Session) handlePanic(r any, stack []byte) {
	if _, ok := r.(failNowSignal); ok {
		return
	}
	if s.accept(r, stack) {
		return
	}
	panic(r)
}

// Flush drains the captured failures.
// It returns nil if nothing was captured, the captured error itself if there was exactly one, and an [*AggregateFailure] otherwise.
// The session is empty once Flush returns.
func (s *Session) Flush() error {
	records := syncx.LockFuncT(&s.mux, func() []*Record {
		drained := s.records
		s.records = nil
		return drained
	})
	switch len(records) {
	case 0:
		return nil
	case 1:
		s.log.Info("Flushed assertion failure", "count", 1)
		return records[0].Err
	default:
		s.log.Info("Flushed assertion failures", "count", len(records))
		return newAggregateFailure(records)
	}
}

// MustFlush is the same as [Session.Flush], but it panics with the resulting error instead of returning it.
func (s *Session) MustFlush() {
	if err := s.Flush(); err != nil {
		panic(err)
	}
}

// Reset discards captured failures without reporting them.
func (s *Session) Reset() {
	syncx.LockFunc(&s.mux, func() {
		s.records = nil
	})
}

func firstLine(msg string) string {
	line, _, _ := strings.Cut(msg, "\n")
	return line
}
