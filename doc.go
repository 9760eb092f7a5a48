/*
Package softassert provides soft assertions for Go tests.

A soft assertion is one whose failure is captured instead of stopping the test right away.
Captured failures are reported together when the test decides to flush them, so a single run shows every broken expectation rather than just the first one.

The packages in this module are laid out like this:
  - soft is the capture engine. It holds the [soft.Session], the failure classifier, the wrappers, the reflective proxy, and the report formatter.
  - assert provides panic-style hard assertions, with the noassert build flag to remove them.
  - expect provides a fluent, chai-like assertion API.
  - softexpect re-exposes expect with every link soft-wrapped.
  - syncx provides the futures used for asynchronous soft blocks.
  - env and slogx carry configuration and logging helpers.

I don't think it makes sense to accept PRs for this repo, but if someone else uses it, then I'm happy to accept issues reports or suggestions on GitHub.
*/
package softassert
