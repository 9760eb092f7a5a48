package soft

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ assert.TestingT  = (*T)(nil)
	_ require.TestingT = (*T)(nil)
)

// T adapts a [Session] to testify's TestingT, so testify assertions can be captured.
//
//	st := s.T()
//	assert.Equal(st, want, got) // captured, and execution continues
//	s.Soft(func() {
//		require.NoError(st, err) // captured, and the rest of the soft block is skipped
//		...
//	})
//
// FailNow only stops the enclosing soft block.
// Calling a require function with T outside of a soft block panics after capturing the failure.
type T struct {
	s *Session
}

// T returns a testify adapter for the session.
func (s *Session) T() *T {
	return &T{s: s}
}

// Errorf captures a [*TestifyFailure].
// In strict mode the failure is raised immediately instead.
func (t *T) Errorf(format string, args ...any) {
	failure := &TestifyFailure{Message: fmt.Sprintf(format, args...)}
	if !t.s.Capture(failure) {
		panic(failure)
	}
}

// FailNow stops the current soft block.
func (t *T) FailNow() {
	panic(failNowSignal{})
}

func (t *T) Helper() {}

// TestifyFailure is a failure reported by a testify assertion through [T].
type TestifyFailure struct {
	Message string
}

func (e *TestifyFailure) Error() string {
	return e.Message
}

func (e *TestifyFailure) AssertionFailure() {}
