package soft

import (
	"runtime/debug"

	"github.com/saylorsolutions/softassert/syncx"
)

// Go runs fn in a new goroutine, and returns a future for its result.
//
// A recognized failure raised by fn is captured, and the future resolves with the zero value of R and a nil error.
// Any other panic rejects the future: error values are passed through unchanged, and other values are wrapped in a [*PanicError].
func Go[R any](s *Session, fn func() R) syncx.FutureErr[R] {
	f := syncx.NewFutureErr[R]()
	go func() {
		var (
			result R
			err    error
		)
		defer func() {
			f.ResolveErr(result, err)
		}()
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if _, ok := r.(failNowSignal); ok {
				return
			}
			if s.accept(r, debug.Stack()) {
				return
			}
			err = rejection(r)
		}()
		result = fn()
	}()
	return f
}

// WrapAsync returns a function that calls fn and captures a recognized failure, whether fn raises it or its future resolves with it.
// A captured failure resolves the returned future with the zero value of R and a nil error.
// Other errors are passed through.
func WrapAsync[R any](s *Session, fn func() syncx.FutureErr[R]) func() syncx.FutureErr[R] {
	return func() syncx.FutureErr[R] {
		var zero R
		inner := Wrap0(s, fn)()
		if inner == nil {
			return syncx.Resolved(zero, nil)
		}
		outer := syncx.NewFutureErr[R]()
		go func() {
			val, err := inner.AwaitErr()
			if err != nil && s.accept(err, debug.Stack()) {
				outer.ResolveErr(zero, nil)
				return
			}
			outer.ResolveErr(val, err)
		}()
		return outer
	}
}

func rejection(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return newPanicError(r)
}
