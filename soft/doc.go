/*
Package soft implements soft assertions: assertion failures raised inside a soft block are captured by a [Session] instead of unwinding the test, and reported together when the session is flushed.

	func TestUser(t *testing.T) {
		s := soft.ForTest(t)
		s.Soft(func() { expect.That(user.Name).To().Equal("alice") })
		s.Soft(func() { expect.That(user.Admin).To().Be().True() })
		// Both failures are reported when the test finishes.
	}

# Capturing

Only failures the session's [Classifier] recognizes are captured.
A failure is a panic value, or a final error result, that matches one of the registered [Kind] values.
The built-in kinds cover the assert and expect packages in this module, testify through [Session.T], and any error implementing [Failure].
Everything else propagates unchanged, so genuine bugs still abort the test.

# Wrapping

[Session.Soft] runs a function once with capture, and [Session.Wrap], [Wrap0], [Wrap1], [Wrap2], [WrapErr], and [WrapFunc] return capturing versions of functions with the same signature.
[Go] and [WrapAsync] do the same for asynchronous work modelled with [syncx.FutureErr].

# Proxying

[Session.Proxy] wraps a value so that every field read, method call, and function invocation along a chain is soft, with each result proxied in turn.
This is reflection based and string keyed, so typed adapters like the softexpect package are usually nicer for libraries that are used often.

# Flushing

[Session.Flush] drains the captured failures.
No failures means a nil error, one failure is returned as the exact error that was captured, and more than one is combined into an [*AggregateFailure].
The session is always empty after a flush, so a second flush won't report stale failures.

# Configuration

Sessions read their defaults from the environment:
  - SOFTASSERT_STRICT disables capturing, so assertions fail immediately.
  - SOFTASSERT_LOG sets the level of session logs written to the test log by [ForTest].
  - SOFTASSERT_AWAIT_TIMEOUT bounds how long proxied futures are awaited.

[syncx.FutureErr]: https://pkg.go.dev/github.com/saylorsolutions/softassert/syncx#FutureErr
*/
package soft
