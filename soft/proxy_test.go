package soft_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/saylorsolutions/softassert/expect"
	"github.com/saylorsolutions/softassert/soft"
	"github.com/saylorsolutions/softassert/syncx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}

func TestProxy_Falsy(t *testing.T) {
	s := soft.New()
	assert.NotPanics(t, func() {
		assert.Nil(t, s.Proxy(nil).Interface())
		assert.Equal(t, false, s.Proxy(false).Interface())
		assert.True(t, s.Proxy(false).Falsy())
		assert.True(t, s.Proxy((*expect.Assertion)(nil)).Absent())

		assert.True(t, s.Proxy(nil).Get("To").Call("Equal", 1).Invoke().Absent())
		assert.True(t, s.Proxy(false).Get("Anything").Absent())
	})
	assert.NoError(t, s.Flush())
}

func TestProxy_FluentChain(t *testing.T) {
	s := soft.New()
	var after bool
	s.Proxy(expect.That(false)).Get("To").Get("Be").Get("True").Get("And").Get("False")
	after = true
	assert.True(t, after)

	err := s.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected false to be true")
}

func TestProxy_Call(t *testing.T) {
	s := soft.New()
	p := s.Proxy(expect.That("a"))
	result := p.Get("To").Call("Equal", "a")
	assert.False(t, result.Absent())
	_, ok := result.Interface().(*expect.Assertion)
	assert.True(t, ok, "A passing link should return the proxied result")

	assert.True(t, p.Get("To").Call("Equal", "b").Absent())
	assert.Equal(t, 1, s.Pending())
	s.Reset()
}

func TestProxy_Invoke(t *testing.T) {
	s := soft.New()
	that := func(val any) *expect.Assertion {
		return expect.That(val)
	}
	s.Proxy(that).Invoke(3).Get("To").Get("Be").Call("Above", 5)
	s.Proxy(that).Invoke(nil).Get("To").Get("Be").Get("Nil")

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "expected 3 to be above 5", records[0].Message())
	s.Reset()
}

type library struct {
	Expect  func(any) *expect.Assertion
	Options map[string]any
	hidden  int
}

func (l library) Version() string {
	return "1.0"
}

func (l *library) Check(ok bool) (int, error) {
	if !ok {
		return 0, &customFailure{msg: "check failed"}
	}
	return 1, nil
}

func (l *library) Load(path string) (string, error) {
	return "", errors.New("cannot load " + path)
}

func (l *library) Explode(reason string) {
	panic(errors.New(reason))
}

func (l *library) Broken() string {
	panic(errors.New("broken getter"))
}

func TestProxy_UnrecognizedPanicPropagates(t *testing.T) {
	s := soft.New()
	lib := s.Proxy(&library{})

	assert.PanicsWithError(t, "connection reset", func() {
		lib.Call("Explode", "connection reset")
	})
	assert.PanicsWithError(t, "broken getter", func() {
		lib.Get("Broken")
	})
	assert.Equal(t, 0, s.Pending())
	assert.NoError(t, s.Flush())
}

func TestProxy_FutureMemberReadTwice(t *testing.T) {
	s := soft.New()
	holder := s.Proxy(&struct {
		F syncx.FutureErr[int]
	}{
		F: syncx.Resolved(0, &customFailure{msg: "rejected"}),
	})

	assert.True(t, holder.Get("F").Await().Absent())
	assert.True(t, holder.Get("F").Await().Absent())
	assert.Equal(t, 2, s.Pending(), "Each read should watch the future again")
	s.Reset()
}

func TestProxy_Members(t *testing.T) {
	s := soft.New()
	lib := s.Proxy(&library{
		Expect:  func(val any) *expect.Assertion { return expect.That(val) },
		Options: map[string]any{"strict": expect.That(true)},
	})

	assert.Equal(t, "1.0", lib.Get("Version").Interface())
	lib.Get("Expect").Invoke("x").Get("To").Call("Equal", "y")
	lib.Get("Options").Get("strict").Get("To").Get("Be").Get("False")
	assert.True(t, lib.Get("Options").Get("missing").Absent())

	checked := lib.Call("Check", true)
	assert.Equal(t, 1, checked.Interface())
	assert.Nil(t, checked.Out(1).Interface())
	assert.True(t, lib.Call("Check", false).Absent())

	loaded := lib.Call("Load", "file.txt")
	assert.EqualError(t, loaded.Err(), "cannot load file.txt")
	assert.True(t, loaded.Get("Anything").Absent())

	assert.PanicsWithError(t, `soft: *soft_test.library has no member "hidden"`, func() {
		lib.Get("hidden")
	})
	assert.PanicsWithError(t, `soft: *soft_test.library has no member "Nope"`, func() {
		lib.Call("Nope")
	})

	records := s.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "expected 'x' to equal 'y'", records[0].Message())
	assert.Equal(t, "expected true to be false", records[1].Message())
	assert.Equal(t, "check failed", records[2].Message())
	s.Reset()
}

func TestProxy_Index(t *testing.T) {
	s := soft.New()
	list := s.Proxy([]*expect.Assertion{expect.That(1), expect.That(2)})
	list.Index(1).Get("To").Call("Equal", 3)
	assert.Equal(t, 1, s.Pending())
	s.Reset()
}

func TestProxy_Await(t *testing.T) {
	s := soft.New()
	rejected := s.Proxy(syncx.Resolved[any](nil, &customFailure{msg: "rejected later"}))
	assert.True(t, rejected.Await().Absent())
	assert.Equal(t, 1, s.Pending())

	resolved := s.Proxy(soft.Go(s, func() *expect.Assertion {
		return expect.That("async")
	}))
	resolved.Await().Get("To").Call("Equal", "sync")

	errIO := errors.New("io failure")
	failed := s.Proxy(syncx.Resolved(0, errIO)).Await()
	assert.Same(t, errIO, failed.Err())

	err := s.Flush()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "Total failures are: 2")
	assert.Less(t, indexOf(msg, "rejected later"), indexOf(msg, "expected 'async' to equal 'sync'"))
}

func TestProxy_AwaitNotFuture(t *testing.T) {
	s := soft.New()
	p := s.Proxy(5)
	assert.Same(t, p, p.Await())
}
