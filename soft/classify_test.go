package soft_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/saylorsolutions/softassert/assert"
	"github.com/saylorsolutions/softassert/expect"
	"github.com/saylorsolutions/softassert/soft"
	testify "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func panicValue(fn func()) (r any) {
	defer func() {
		r = recover()
	}()
	fn()
	return nil
}

func TestClassifier_DefaultKinds(t *testing.T) {
	c := soft.NewClassifier(soft.DefaultKinds()...)
	tests := map[string]struct {
		val      any
		accepted bool
		kind     string
	}{
		"assert": {
			val:      panicValue(func() { assert.True("label", false) }),
			accepted: true,
			kind:     soft.KindAssert,
		},
		"expect": {
			val:      panicValue(func() { expect.That(1).To().Equal(2) }),
			accepted: true,
			kind:     soft.KindExpect,
		},
		"testify": {
			val:      &soft.TestifyFailure{Message: "Not equal"},
			accepted: true,
			kind:     soft.KindTestify,
		},
		"capability": {
			val:      &customFailure{msg: "custom"},
			accepted: true,
			kind:     soft.KindCapability,
		},
		"wrapped": {
			val:      fmt.Errorf("context: %w", &customFailure{msg: "custom"}),
			accepted: true,
			kind:     soft.KindCapability,
		},
		"wrapped twice": {
			val:      fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", panicValue(func() { expect.That(1).To().Equal(2) }).(error))),
			accepted: true,
			kind:     soft.KindExpect,
		},
		"joined with plain error": {
			val: errors.Join(errors.New("disk full"), panicValue(func() { expect.That(1).To().Equal(2) }).(error)),
		},
		"wrapped join": {
			val: fmt.Errorf("context: %w", errors.Join(errors.New("disk full"), &customFailure{msg: "custom"})),
		},
		"plain error": {
			val: errors.New("io failure"),
		},
		"string": {
			val: "AssertionError: looks like one",
		},
		"nil": {
			val: nil,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			kind, ok := c.Classify(tc.val)
			testify.Equal(t, tc.accepted, ok)
			testify.Equal(t, tc.kind, kind.Name)
		})
	}
}

func TestClassifier_With(t *testing.T) {
	base := soft.NewClassifier(soft.DefaultKinds()...)
	extended := base.With(soft.MatchType[*fs.PathError]("fs"))

	_, err := os.Open("/this/path/should/not/exist")
	require.Error(t, err)

	_, ok := base.Classify(err)
	testify.False(t, ok, "The base classifier should not change")
	kind, ok := extended.Classify(err)
	testify.True(t, ok)
	testify.Equal(t, "fs", kind.Name)
}

func TestClassifier_NilMatcher(t *testing.T) {
	testify.Panics(t, func() {
		soft.NewClassifier(soft.Kind{Name: "broken"})
	})
}

func TestSession_WithKinds(t *testing.T) {
	s := soft.New(soft.WithKinds(soft.MatchType[*fs.PathError]("fs")))
	s.Soft(func() {
		_, err := os.Open("/this/path/should/not/exist")
		panic(err)
	})
	records := s.Records()
	require.Len(t, records, 1)
	testify.Equal(t, "fs", records[0].Kind)
	s.Reset()
}

func TestSession_WithClassifier(t *testing.T) {
	s := soft.New(soft.WithClassifier(soft.NewClassifier(soft.MatchType[*expect.AssertionError](soft.KindExpect))))
	s.Soft(func() { expect.That(1).To().Equal(2) })
	testify.Panics(t, func() {
		s.Soft(func() { assert.True("not recognized here", false) })
	})
	testify.Equal(t, 1, s.Pending())
	s.Reset()
}

func TestClassifier_AggregateIsClassifiedAsWhole(t *testing.T) {
	inner := soft.New()
	inner.Soft(func() { expect.That(1).To().Equal(2) })
	inner.Soft(func() { assert.True("second", false) })
	agg := inner.Flush()
	require.Error(t, agg)

	kind, ok := soft.NewClassifier(soft.DefaultKinds()...).Classify(agg)
	testify.True(t, ok)
	testify.Equal(t, soft.KindCapability, kind.Name)

	_, ok = soft.NewClassifier(soft.MatchType[*expect.AssertionError](soft.KindExpect)).Classify(agg)
	testify.False(t, ok, "Members of an aggregate should not be matched through it")
}

func TestSession_JoinedErrorPropagates(t *testing.T) {
	s := soft.New()
	errDisk := errors.New("disk full")
	joined := errors.Join(errDisk, panicValue(func() { expect.That(1).To().Equal(2) }).(error))

	val := panicValue(func() {
		s.Soft(func() { panic(joined) })
	})
	testify.Equal(t, joined, val, "The joined error should propagate unchanged")
	testify.ErrorIs(t, val.(error), errDisk)
	testify.Equal(t, 0, s.Pending())
	testify.NoError(t, s.Flush())
}
