//go:build !noassert

package assert

import (
	"reflect"
	"sync/atomic"
)

var disabled atomic.Bool

// Disable will disable assertion evaluation globally.
// This is concurrency safe, but can have side effects in other goroutines that use assertions.
func Disable() {
	disabled.Store(true)
}

// Enable can be used to re-enable assertion evaluation if Disable was called previously.
// Note that this is a global setting, and calling Disable or Enable can have unintended side effects in other goroutines that use assertions.
func Enable() {
	disabled.Store(false)
}

// True will panic with an [*Error] if result is not true.
func True(label string, result bool) {
	if disabled.Load() {
		return
	}
	if !result {
		fail(label, "")
	}
}

// TrueFunc will panic with an [*Error] if assertion returns false.
func TrueFunc(label string, assertion func() bool) {
	if disabled.Load() {
		return
	}
	if !assertion() {
		fail(label, "")
	}
}

// NotEmpty will panic if the length of the given value is 0.
// Note that types that can't return a length using [reflect.Value.Len] will result in this function always panicking.
func NotEmpty(label string, val any) {
	if disabled.Load() {
		return
	}
	if reflect.ValueOf(val).Len() == 0 {
		fail(label, "expected a non-empty value")
	}
}

// Equal will panic if expected and actual are not deeply equal.
func Equal(label string, expected, actual any) {
	if disabled.Load() {
		return
	}
	if !reflect.DeepEqual(expected, actual) {
		fail(label, "expected %#v, got %#v", expected, actual)
	}
}

// NoError will panic if err is not nil.
func NoError(label string, err error) {
	if disabled.Load() {
		return
	}
	if err != nil {
		fail(label, "unexpected error: %s", err)
	}
}
