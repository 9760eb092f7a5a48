/*
Package assert provides runtime assertion support for expressing validation constraints in a user-friendly way.

Assertions panic with an [*Error] when they're violated.
Because [*Error] is a recognized assertion failure, these assertions may be run inside a soft block from the soft package, where the failure is captured and reported later instead of unwinding the test.

To turn off assertions build with the 'noassert' flag.
For temporary changes, the Disable and Enable functions are also provided, but these should likely not be used in production code.
*/
package assert
