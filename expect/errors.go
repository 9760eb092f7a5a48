package expect

import (
	"runtime/debug"
	"strings"
)

// AssertionError is the panic value of a failed expectation.
type AssertionError struct {
	Message  string // Message is the human-readable failure message.
	Expected any    // Expected is the value the assertion compared against, if any.
	Actual   any    // Actual is the value under test.
	Diff     string // Diff is a go-cmp diff for deep equality failures.
	trace    string
}

func newAssertionError(msg string, expected, actual any) *AssertionError {
	err := &AssertionError{
		Message:  msg,
		Expected: expected,
		Actual:   actual,
	}
	err.trace = strings.TrimSuffix(string(debug.Stack()), "\n")
	return err
}

func (e *AssertionError) Error() string {
	if len(e.Diff) == 0 {
		return e.Message
	}
	return e.Message + "\n" + e.Diff
}

// Stack returns the trace captured when the assertion failed.
// It starts with a header line containing the message, followed by the goroutine trace.
func (e *AssertionError) Stack() string {
	return "AssertionError: " + e.Error() + "\n" + e.trace
}

// AssertionFailure marks AssertionError as an assertion failure.
func (e *AssertionError) AssertionFailure() {}
