/*
Package expect provides a fluent assertion API in the style of chai's expect.

	expect.That(got).To().Deep().Equal(want)
	expect.That(ok).To().Be().True()
	expect.That(items).To().Not().Be().Empty()

Chain links like To, Be, and Is only improve readability, while Not and Deep change how the terminal assertion evaluates.
A failed assertion panics with an [*AssertionError], whose message reads the way chai's does, for example "expected 'a' to equal 'b'".
Use the soft package to capture these failures instead of unwinding the test.
*/
package expect
