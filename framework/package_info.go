// Package framework contains the low-level implementation of smoke test infrastructure that
// is not specific to any one backend. Backend access lives in the harness subpackage.
//
// The general model is:
//
// 1. The test harness talks to a backend under test over HTTP, one request at a time, with a
// bounded timeout per request.
//
// 2. There is a general notion of a test context which is similar to Go's testing.T, allowing
// pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. A failing test never stops its siblings from running.
//
// 3. Results are an ordered list of per-test outcomes; the run as a whole passed only if every
// one of them passed.
//
// The domain-specific code that knows what is being tested is responsible for deciding which
// requests to send and what the responses must look like.
package framework
