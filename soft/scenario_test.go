package soft_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/saylorsolutions/softassert/expect"
	"github.com/saylorsolutions/softassert/soft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_TwoFailures(t *testing.T) {
	s := soft.New()
	s.Soft(func() { expect.That("a").To().Equal("b") })
	s.Soft(func() { expect.That("c").To().Equal("b") })

	err := s.Flush()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "Total failures are: 2")
	assert.Contains(t, msg, "expected 'a' to equal 'b'")
	assert.Contains(t, msg, "expected 'c' to equal 'b'")
	assert.Less(t, strings.Index(msg, "'a'"), strings.Index(msg, "'c'"))

	var aerr *expect.AssertionError
	assert.True(t, errors.As(err, &aerr), "Aggregated failures should be reachable with errors.As")
	assert.NoError(t, s.Flush())
}

func TestScenario_WrappedTest(t *testing.T) {
	s := soft.New()
	testFn := s.Wrap(func() {
		expect.That("a").To().Equal("b")
		expect.That("c").To().Equal("b")
	})
	testFn()
	assert.Equal(t, 1, s.Pending(), "A wrapped block stops at its first failure")
	s.Reset()
}

func TestScenario_SingleFailureIdentity(t *testing.T) {
	hard := func() (r any) {
		defer func() {
			r = recover()
		}()
		expect.That(1).To().Equal(2)
		return nil
	}
	expected, ok := hard().(*expect.AssertionError)
	require.True(t, ok)

	s := soft.New()
	var captured *expect.AssertionError
	s.Soft(func() {
		defer func() {
			captured = recover().(*expect.AssertionError)
			panic(captured)
		}()
		expect.That(1).To().Equal(2)
	})
	err := s.Flush()
	assert.Same(t, captured, err, "Flush should return the same error value that was raised")
	assert.Equal(t, expected.Message, err.Error())
}

func TestScenario_ProxiedChain(t *testing.T) {
	s := soft.New()
	s.Proxy(expect.That(false)).Get("To").Get("Be").Get("True")
	err := s.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected false to be true")
}

func TestScenario_NothingCaptured(t *testing.T) {
	s := soft.New()
	assert.NoError(t, s.Flush())
	assert.Equal(t, 0, s.Pending())
}

func TestScenario_AsyncBlock(t *testing.T) {
	s := soft.New()
	var pass bool
	_, err := soft.Go(s, func() struct{} {
		pass = true
		return struct{}{}
	}).AwaitErr()
	assert.NoError(t, err)
	assert.True(t, pass)
	assert.NoError(t, s.Flush())
}
