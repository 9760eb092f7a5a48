package expect

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Assertion is a link in a fluent assertion chain.
// Links are immutable, so a partial chain may be reused.
type Assertion struct {
	actual any
	prefix string
	negate bool
	deep   bool
}

// That starts an assertion chain for actual.
// An optional message is prefixed to failure messages.
func That(actual any, msg ...string) *Assertion {
	a := &Assertion{actual: actual}
	if len(msg) > 0 {
		a.prefix = strings.Join(msg, " ")
	}
	return a
}

// Actual returns the value under test.
func (a *Assertion) Actual() any {
	return a.actual
}

func (a *Assertion) To() *Assertion   { return a }
func (a *Assertion) Be() *Assertion   { return a }
func (a *Assertion) Been() *Assertion { return a }
func (a *Assertion) Is() *Assertion   { return a }
func (a *Assertion) And() *Assertion  { return a }
func (a *Assertion) Have() *Assertion { return a }

// Not negates the terminal assertion.
func (a *Assertion) Not() *Assertion {
	cp := *a
	cp.negate = !cp.negate
	return &cp
}

// Deep makes Equal compare structurally using go-cmp.
func (a *Assertion) Deep() *Assertion {
	cp := *a
	cp.deep = true
	return &cp
}

// check panics with an [*AssertionError] if ok doesn't match the chain's expectation.
func (a *Assertion) check(ok bool, verb string, expected any, hasExpected bool) *Assertion {
	if ok != a.negate {
		return a
	}
	panic(a.failure(verb, expected, hasExpected))
}

// failure builds the error for a failed assertion.
// The verb describes the positive form, like "equal", and "not" is inserted for negated chains.
func (a *Assertion) failure(verb string, expected any, hasExpected bool) *AssertionError {
	var msg strings.Builder
	if len(a.prefix) > 0 {
		msg.WriteString(a.prefix)
		msg.WriteString(": ")
	}
	msg.WriteString("expected ")
	msg.WriteString(Inspect(a.actual))
	msg.WriteString(" to ")
	if a.negate {
		msg.WriteString("not ")
	}
	msg.WriteString(verb)
	if hasExpected {
		msg.WriteString(" ")
		msg.WriteString(Inspect(expected))
	}
	return newAssertionError(msg.String(), expected, a.actual)
}

// True asserts that the value is the boolean true.
func (a *Assertion) True() *Assertion {
	b, ok := a.actual.(bool)
	return a.check(ok && b, "be true", nil, false)
}

// False asserts that the value is the boolean false.
func (a *Assertion) False() *Assertion {
	b, ok := a.actual.(bool)
	return a.check(ok && !b, "be false", nil, false)
}

// Nil asserts that the value is nil, including typed nil pointers, maps, slices, channels, and functions.
func (a *Assertion) Nil() *Assertion {
	return a.check(isNil(a.actual), "be nil", nil, false)
}

// Equal asserts that the value equals expected.
// Comparable values are compared with ==, and other values with [reflect.DeepEqual].
// In a Deep chain, values are compared with go-cmp, and a diff is attached to the failure.
func (a *Assertion) Equal(expected any) *Assertion {
	if a.deep {
		return a.deepEqual(expected)
	}
	return a.check(shallowEqual(a.actual, expected), "equal", expected, true)
}

var cmpOpts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

func (a *Assertion) deepEqual(expected any) *Assertion {
	eq := cmp.Equal(expected, a.actual, cmpOpts...)
	if eq != a.negate {
		return a
	}
	err := a.failure("deeply equal", expected, true)
	if !a.negate {
		err.Diff = cmp.Diff(expected, a.actual, cmpOpts...)
	}
	panic(err)
}

// Contain asserts that a string contains a substring, a slice or array contains an element, or a map contains a key.
func (a *Assertion) Contain(expected any) *Assertion {
	return a.check(contains(a.actual, expected), "include", expected, true)
}

// Len asserts that the value has a length of n.
func (a *Assertion) Len(n int) *Assertion {
	l, ok := length(a.actual)
	if ok && l != n && !a.negate {
		return a.check(false, fmt.Sprintf("have a length of %d but got %d", n, l), nil, false)
	}
	return a.check(ok && l == n, fmt.Sprintf("have a length of %d", n), nil, false)
}

// Empty asserts that the value is nil or has a length of zero.
func (a *Assertion) Empty() *Assertion {
	if a.actual == nil {
		return a.check(true, "be empty", nil, false)
	}
	l, ok := length(a.actual)
	return a.check(ok && l == 0, "be empty", nil, false)
}

// Above asserts that the value is a number greater than n.
func (a *Assertion) Above(n any) *Assertion {
	x, xok := toFloat(a.actual)
	y, yok := toFloat(n)
	return a.check(xok && yok && x > y, "be above", n, true)
}

// Below asserts that the value is a number less than n.
func (a *Assertion) Below(n any) *Assertion {
	x, xok := toFloat(a.actual)
	y, yok := toFloat(n)
	return a.check(xok && yok && x < y, "be below", n, true)
}

// ErrorIs asserts that the value is an error matching target with [errors.Is].
func (a *Assertion) ErrorIs(target error) *Assertion {
	err, ok := a.actual.(error)
	return a.check(ok && errors.Is(err, target), "match error", target, true)
}

func isNil(val any) bool {
	if val == nil {
		return true
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func shallowEqual(actual, expected any) bool {
	if actual == nil || expected == nil {
		return isNil(actual) && isNil(expected) && reflect.TypeOf(actual) == reflect.TypeOf(expected)
	}
	if reflect.TypeOf(actual).Comparable() && reflect.TypeOf(expected).Comparable() {
		return actual == expected
	}
	return reflect.DeepEqual(actual, expected)
}

func contains(container, elem any) bool {
	if s, ok := container.(string); ok {
		sub, ok := elem.(string)
		return ok && strings.Contains(s, sub)
	}
	v := reflect.ValueOf(container)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if reflect.DeepEqual(v.Index(i).Interface(), elem) {
				return true
			}
		}
	case reflect.Map:
		key := reflect.ValueOf(elem)
		if !key.IsValid() || !key.Type().AssignableTo(v.Type().Key()) {
			return false
		}
		return v.MapIndex(key).IsValid()
	default:
	}
	return false
}

func length(val any) (int, bool) {
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return v.Len(), true
	default:
		return 0, false
	}
}

func toFloat(val any) (float64, bool) {
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
