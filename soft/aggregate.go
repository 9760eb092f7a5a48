package soft

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var _ Failure = (*AggregateFailure)(nil)

// AggregateFailure is returned by a flush that drained more than one failure.
// Its message is the combined report of every failure, and [errors.Is] and [errors.As] can be used to find any of them.
//
// An AggregateFailure is itself an assertion failure, so flushing a session inside another session's soft block nests as expected.
type AggregateFailure struct {
	records []*Record
	message string
}

func newAggregateFailure(records []*Record) *AggregateFailure {
	return &AggregateFailure{
		records: records,
		message: FormatReport(records),
	}
}

func (e *AggregateFailure) Error() string {
	return e.message
}

func (e *AggregateFailure) AssertionFailure() {}

// Len returns the number of failures in the aggregate.
func (e *AggregateFailure) Len() int {
	return len(e.records)
}

// Records returns the aggregated failures in capture order.
func (e *AggregateFailure) Records() []*Record {
	out := make([]*Record, len(e.records))
	copy(out, e.records)
	return out
}

// Report returns a structured form of the aggregated failures.
func (e *AggregateFailure) Report() Report {
	return NewReport(e.records)
}

// Unwrap allows using [errors.Is] and [errors.As] to identify any failure in the aggregate.
func (e *AggregateFailure) Unwrap() []error {
	errs := make([]error, len(e.records))
	for i, rec := range e.records {
		errs[i] = rec.Err
	}
	return errs
}

// PanicError is used to reject a future when asynchronous work panics with a value that isn't an error.
type PanicError struct {
	Value any
	Stack string
}

func newPanicError(val any) *PanicError {
	return &PanicError{
		Value: val,
		Stack: strings.TrimSuffix(string(debug.Stack()), "\n"),
	}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// MemberError is raised by a proxied [Value] when a field, method, or key doesn't exist on a present value.
// It isn't an assertion failure, so it's never captured.
type MemberError struct {
	Type   string
	Member string
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("soft: %s has no member %q", e.Type, e.Member)
}

// failNowSignal is the panic value of [T.FailNow].
// It stops the current soft block after the failure has already been captured.
type failNowSignal struct{}

func (failNowSignal) Error() string {
	return "soft: FailNow called outside of a soft block"
}
