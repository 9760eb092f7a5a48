package soft

import (
	"github.com/saylorsolutions/softassert/assert"
	"github.com/saylorsolutions/softassert/expect"
)

// Failure is the capability that marks any error as an assertion failure.
// Assertion libraries that aren't known to this package can implement it to be captured by default.
type Failure interface {
	error
	AssertionFailure()
}

// Kind is a recognized kind of assertion failure.
// Match is given one error of the classified chain at a time, see [Classifier.Classify].
type Kind struct {
	Name  string
	Match func(err error) bool
}

// MatchType creates a [Kind] that accepts an error of type E.
func MatchType[E error](name string) Kind {
	return Kind{
		Name: name,
		Match: func(err error) bool {
			_, ok := err.(E)
			return ok
		},
	}
}

const (
	KindAssert     = "assert"
	KindExpect     = "expect"
	KindTestify    = "testify"
	KindCapability = "capability"
)

// DefaultKinds returns the kinds a [Classifier] recognizes unless told otherwise.
// Order matters, the first matching kind names the captured [Record].
func DefaultKinds() []Kind {
	return []Kind{
		MatchType[*assert.Error](KindAssert),
		MatchType[*expect.AssertionError](KindExpect),
		MatchType[*TestifyFailure](KindTestify),
		MatchType[Failure](KindCapability),
	}
}

// Classifier decides whether a raised value is a capturable assertion failure.
// It has no side effects, and it's safe for concurrent use once created.
type Classifier struct {
	kinds []Kind
}

// NewClassifier creates a [Classifier] that recognizes the given kinds, in order.
func NewClassifier(kinds ...Kind) *Classifier {
	c := &Classifier{kinds: make([]Kind, 0, len(kinds))}
	for _, k := range kinds {
		if k.Match == nil {
			panic("nil kind matcher: " + k.Name)
		}
		c.kinds = append(c.kinds, k)
	}
	return c
}

// With returns a new [Classifier] that recognizes the receiver's kinds followed by more.
func (c *Classifier) With(more ...Kind) *Classifier {
	kinds := make([]Kind, 0, len(c.kinds)+len(more))
	kinds = append(kinds, c.kinds...)
	kinds = append(kinds, more...)
	return NewClassifier(kinds...)
}

// Classify returns the matching kind if val is an error that one of the registered kinds accepts.
// Values that aren't errors are never accepted.
//
// Every kind is tried against the outermost error first, then against each error of its single error Unwrap chain.
// Errors that unwrap to more than one error, like those from [errors.Join], end the chain.
// Such an error is only accepted if a kind matches it directly, so an unrelated error joined with a failure still propagates.
func (c *Classifier) Classify(val any) (Kind, bool) {
	err, ok := val.(error)
	if !ok || err == nil {
		return Kind{}, false
	}
	for ; err != nil; err = unwrapOne(err) {
		for _, k := range c.kinds {
			if k.Match(err) {
				return k, true
			}
		}
	}
	return Kind{}, false
}

func unwrapOne(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}
