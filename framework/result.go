package framework

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// FailureKind says whether a test failed because the backend could not be reached at all, or
// because it answered with something other than what the test expected.
type FailureKind string

const (
	// AssertionFailure means the backend responded, but the response was wrong.
	AssertionFailure FailureKind = "assertion"

	// ConnectivityFailure means the request never got a response: connection refused, DNS
	// failure, timeout, and the like.
	ConnectivityFailure FailureKind = "connectivity"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Failed  bool
	Skipped bool
}

// OK returns true if no test failed. Skipped tests do not count against the run.
func (r Results) OK() bool {
	ok := true
	for _, t := range r.Tests {
		ok = ok && !t.Failed
	}
	return ok
}

// FailedIDs returns the IDs of the failed tests, in the order they ran.
func (r Results) FailedIDs() []TestID {
	var ret []TestID
	for _, f := range r.Failures {
		ret = append(ret, f.TestID)
	}
	return ret
}

// Kinds returns the distinct kinds of failure recorded for this test, in the order first seen.
func (t TestResult) Kinds() []FailureKind {
	var ret []FailureKind
	for _, err := range t.Errors {
		kind := AssertionFailure
		var f TestFailure
		if errors.As(err, &f) {
			kind = f.Kind
		}
		seen := false
		for _, k := range ret {
			seen = seen || k == kind
		}
		if !seen {
			ret = append(ret, kind)
		}
	}
	return ret
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID   TestID
	Kind FailureKind
	Err  error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s] %s: %s", f.ID, f.Kind, f.Err)
}

func (f TestFailure) Unwrap() error {
	return f.Err
}

// PrintResults writes a summary of the failed tests, if any. The overall verdict is left to
// the caller, since only it knows what the tests were testing.
func PrintResults(w io.Writer, results Results) {
	var run, skipped int
	for _, t := range results.Tests {
		if len(t.TestID.Path) == 0 {
			continue
		}
		if t.Skipped {
			skipped++
		} else {
			run++
		}
	}
	fmt.Fprintf(w, "Ran %d test(s), %d failed, %d skipped\n", run, len(results.Failures), skipped)
	if len(results.Failures) == 0 {
		return
	}
	fmt.Fprintln(w, "Failed tests:")
	for _, f := range results.Failures {
		var kinds []string
		for _, k := range f.Kinds() {
			kinds = append(kinds, string(k))
		}
		if len(kinds) == 0 {
			fmt.Fprintf(w, "  %s\n", f.TestID)
		} else {
			fmt.Fprintf(w, "  %s (%s)\n", f.TestID, strings.Join(kinds, ", "))
		}
	}
}
