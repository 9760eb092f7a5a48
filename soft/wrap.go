package soft

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

// Soft runs fn once, capturing any recognized failure.
func (s *Session) Soft(fn func()) {
	s.Wrap(fn)()
}

// Wrap returns a function that calls fn, capturing any recognized failure.
// Each call to Wrap returns a new function, and fn is left unchanged.
func (s *Session) Wrap(fn func()) func() {
	return func() {
		defer s.recoverFailure()
		fn()
	}
}

// SoftValue runs fn once and returns its result.
// If a failure is captured, then the zero value of R is returned.
func SoftValue[R any](s *Session, fn func() R) R {
	return Wrap0(s, fn)()
}

// Wrap0 returns a function that calls fn, capturing any recognized failure.
// If a failure is captured, then the zero value of R is returned.
func Wrap0[R any](s *Session, fn func() R) func() R {
	return func() (result R) {
		defer s.recoverFailure()
		return fn()
	}
}

// Wrap1 is the same as [Wrap0], for functions with one parameter.
func Wrap1[A, R any](s *Session, fn func(A) R) func(A) R {
	return func(a A) (result R) {
		defer s.recoverFailure()
		return fn(a)
	}
}

// Wrap2 is the same as [Wrap0], for functions with two parameters.
func Wrap2[A, B, R any](s *Session, fn func(A, B) R) func(A, B) R {
	return func(a A, b B) (result R) {
		defer s.recoverFailure()
		return fn(a, b)
	}
}

// WrapErr returns a function that calls fn, capturing any recognized failure whether it's raised or returned.
// A captured failure results in the zero value of R and a nil error.
// Unrecognized errors are returned unchanged.
func WrapErr[R any](s *Session, fn func() (R, error)) func() (R, error) {
	return func() (result R, err error) {
		defer s.recoverFailure()
		result, err = fn()
		if err != nil && s.accept(err, debug.Stack()) {
			var zero R
			return zero, nil
		}
		return result, err
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// WrapFunc returns a function of exactly the same type as fn, that calls fn and captures any recognized failure.
// Because the type is unchanged, the number of parameters and whether the function is variadic are preserved, which matters to code that inspects functions with reflection.
//
// When a failure is captured, every result is the zero value of its type.
// If the last result is an error, then a recognized failure returned there is captured as well.
//
// WrapFunc panics if fn isn't a function, and returns a nil fn unchanged.
func (s *Session) WrapFunc(fn any) any {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		panic(fmt.Errorf("soft: WrapFunc requires a function, got %T", fn))
	}
	if fv.IsNil() {
		return fn
	}
	return s.wrapFuncValue(fv).Interface()
}

// WrapFuncOf is a typed version of [Session.WrapFunc].
func WrapFuncOf[F any](s *Session, fn F) F {
	return s.WrapFunc(fn).(F)
}

func (s *Session) wrapFuncValue(fv reflect.Value) reflect.Value {
	ft := fv.Type()
	returnsErr := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errorType
	return reflect.MakeFunc(ft, func(args []reflect.Value) (results []reflect.Value) {
		results = zeroResults(ft)
		defer s.recoverFailure()
		var out []reflect.Value
		if ft.IsVariadic() {
			out = fv.CallSlice(args)
		} else {
			out = fv.Call(args)
		}
		if returnsErr {
			last := out[len(out)-1]
			if !last.IsNil() && s.accept(last.Interface(), debug.Stack()) {
				return results
			}
		}
		return out
	})
}

func zeroResults(ft reflect.Type) []reflect.Value {
	results := make([]reflect.Value, ft.NumOut())
	for i := range results {
		results[i] = reflect.Zero(ft.Out(i))
	}
	return results
}
