package soft

import (
	"log/slog"
	"time"

	"github.com/saylorsolutions/softassert/env"
)

const (
	EnvStrict       = "SOFTASSERT_STRICT"        // EnvStrict turns off capturing when set to a true value.
	EnvLog          = "SOFTASSERT_LOG"           // EnvLog sets the level of the test logger used by ForTest.
	EnvAwaitTimeout = "SOFTASSERT_AWAIT_TIMEOUT" // EnvAwaitTimeout bounds how long proxied futures are awaited.
)

// Option configures a [Session].
type Option func(s *Session)

// WithLogger sets the logger used for session events.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithKinds adds failure kinds to the session's classifier.
func WithKinds(kinds ...Kind) Option {
	return func(s *Session) {
		s.classifier = s.classifier.With(kinds...)
	}
}

// WithClassifier replaces the session's classifier entirely.
func WithClassifier(c *Classifier) Option {
	return func(s *Session) {
		if c != nil {
			s.classifier = c
		}
	}
}

// WithStrict turns off capturing, so recognized failures propagate immediately as if they weren't soft.
// This overrides the SOFTASSERT_STRICT environment variable.
func WithStrict(strict bool) Option {
	return func(s *Session) {
		s.strict = strict
	}
}

// WithAwaitTimeout bounds how long a proxied future is awaited when no timeout is given.
// Zero waits forever.
func WithAwaitTimeout(timeout time.Duration) Option {
	return func(s *Session) {
		s.awaitTimeout = timeout
	}
}

func envDefaults(s *Session) {
	s.strict = env.Bool(EnvStrict, false)
	s.awaitTimeout = env.Duration(EnvAwaitTimeout, 0)
}
