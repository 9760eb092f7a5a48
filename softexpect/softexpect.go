// Package softexpect re-exposes the expect package's fluent API with every link running soft in a [soft.Session].
//
//	softexpect.That(s, user.Name).To().Equal("alice")
//	softexpect.That(s, user.Admin).To().Be().True()
//
// The first failure in a chain is captured, and the rest of the chain is skipped.
package softexpect

import (
	"github.com/saylorsolutions/softassert/expect"
	"github.com/saylorsolutions/softassert/soft"
)

// Assertion is a soft link in a fluent assertion chain.
type Assertion struct {
	s *soft.Session
	a *expect.Assertion
}

// That starts a soft assertion chain for actual.
func That(s *soft.Session, actual any, msg ...string) *Assertion {
	return &Assertion{
		s: s,
		a: expect.That(actual, msg...),
	}
}

// Unwrap returns the underlying hard assertion, or nil if a link in the chain failed.
func (a *Assertion) Unwrap() *expect.Assertion {
	return a.a
}

// Failed reports whether a link in the chain failed.
func (a *Assertion) Failed() bool {
	return a.a == nil
}

func (a *Assertion) link(fn func(*expect.Assertion) *expect.Assertion) *Assertion {
	if a.a == nil {
		return a
	}
	return &Assertion{
		s: a.s,
		a: soft.Wrap1(a.s, fn)(a.a),
	}
}

func (a *Assertion) To() *Assertion   { return a.link((*expect.Assertion).To) }
func (a *Assertion) Be() *Assertion   { return a.link((*expect.Assertion).Be) }
func (a *Assertion) Been() *Assertion { return a.link((*expect.Assertion).Been) }
func (a *Assertion) Is() *Assertion   { return a.link((*expect.Assertion).Is) }
func (a *Assertion) And() *Assertion  { return a.link((*expect.Assertion).And) }
func (a *Assertion) Have() *Assertion { return a.link((*expect.Assertion).Have) }
func (a *Assertion) Not() *Assertion  { return a.link((*expect.Assertion).Not) }
func (a *Assertion) Deep() *Assertion { return a.link((*expect.Assertion).Deep) }

func (a *Assertion) True() *Assertion  { return a.link((*expect.Assertion).True) }
func (a *Assertion) False() *Assertion { return a.link((*expect.Assertion).False) }
func (a *Assertion) Nil() *Assertion   { return a.link((*expect.Assertion).Nil) }
func (a *Assertion) Empty() *Assertion { return a.link((*expect.Assertion).Empty) }

func (a *Assertion) Equal(expected any) *Assertion {
	return a.link(func(x *expect.Assertion) *expect.Assertion { return x.Equal(expected) })
}

func (a *Assertion) Contain(expected any) *Assertion {
	return a.link(func(x *expect.Assertion) *expect.Assertion { return x.Contain(expected) })
}

func (a *Assertion) Len(n int) *Assertion {
	return a.link(func(x *expect.Assertion) *expect.Assertion { return x.Len(n) })
}

func (a *Assertion) Above(n any) *Assertion {
	return a.link(func(x *expect.Assertion) *expect.Assertion { return x.Above(n) })
}

func (a *Assertion) Below(n any) *Assertion {
	return a.link(func(x *expect.Assertion) *expect.Assertion { return x.Below(n) })
}

func (a *Assertion) ErrorIs(target error) *Assertion {
	return a.link(func(x *expect.Assertion) *expect.Assertion { return x.ErrorIs(target) })
}
