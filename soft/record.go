package soft

import (
	"errors"
	"strings"
)

// Record is a captured assertion failure.
type Record struct {
	Err      error  // Err is the failure exactly as it was raised.
	Kind     string // Kind is the name of the classifier kind that accepted Err.
	Trace    string // Trace is the call stack at the time of the failure, if known.
	Uncaught bool   // Uncaught is true if the failure reports itself as uncaught.
}

type stacker interface {
	Stack() string
}

type inspector interface {
	Inspect() string
}

type uncaughter interface {
	Uncaught() bool
}

func newRecord(err error, kind string, stack []byte) *Record {
	rec := &Record{
		Err:  err,
		Kind: kind,
	}
	var st stacker
	if errors.As(err, &st) {
		rec.Trace = st.Stack()
	} else {
		rec.Trace = strings.TrimSuffix(string(stack), "\n")
	}
	var u uncaughter
	if errors.As(err, &u) {
		rec.Uncaught = u.Uncaught()
	}
	return rec
}

// Message returns the failure's message.
// If the error message is empty, then the result of an Inspect method is used if the error has one.
func (r *Record) Message() string {
	if r.Err == nil {
		return ""
	}
	if msg := r.Err.Error(); len(msg) > 0 {
		return msg
	}
	var in inspector
	if errors.As(r.Err, &in) {
		return in.Inspect()
	}
	return ""
}

// Error satisfies the error interface, so a Record can be passed where an error is expected.
func (r *Record) Error() string {
	return r.Message()
}

// Unwrap returns the captured failure.
func (r *Record) Unwrap() error {
	return r.Err
}
