package assert

import (
	"fmt"
	"runtime"
)

// Error is the panic value produced by a failed assertion in this package.
// It's recognized as a capturable failure by the soft package, so these assertions can be used inside a soft block.
type Error struct {
	Label   string // Label is the label passed to the assertion.
	Message string // Message describes what went wrong, without caller details.
	Caller  string // Caller is the file and line of the failed assertion, or "unknown".
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if len(e.Message) == 0 {
		return fmt.Sprintf("assertion '%s' failed at %s", e.Label, e.Caller)
	}
	return fmt.Sprintf("assertion '%s' failed at %s: %s", e.Label, e.Caller, e.Message)
}

// AssertionFailure marks Error as an assertion failure.
func (e *Error) AssertionFailure() {}

func callerDetails(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

func fail(label, msg string, args ...any) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	panic(&Error{
		Label:   label,
		Message: msg,
		Caller:  callerDetails(2),
	})
}
