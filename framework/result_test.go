package framework

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func result(name string, failed bool, errs ...error) TestResult {
	return TestResult{TestID: TestID{Path: []string{name}}, Failed: failed, Errors: errs}
}

func TestOKIsConjunctionOfAllResults(t *testing.T) {
	for _, outcomes := range [][]bool{
		{true, true, true},
		{false, true, true},
		{true, false, true},
		{true, true, false},
		{false, false, false},
	} {
		var r Results
		expected := true
		for i, passed := range outcomes {
			r.Tests = append(r.Tests, result(string(rune('a'+i)), !passed))
			expected = expected && passed
		}
		assert.Equal(t, expected, r.OK(), "outcomes: %v", outcomes)
	}
}

func TestEmptyResultsAreOK(t *testing.T) {
	assert.True(t, Results{}.OK())
}

func TestKindsDeduplicatesInOrder(t *testing.T) {
	r := result("x", true,
		TestFailure{Kind: ConnectivityFailure, Err: errors.New("a")},
		errors.New("untyped counts as assertion"),
		TestFailure{Kind: ConnectivityFailure, Err: errors.New("b")},
	)
	assert.Equal(t, []FailureKind{ConnectivityFailure, AssertionFailure}, r.Kinds())
}

func TestTestFailureError(t *testing.T) {
	f := TestFailure{ID: TestID{Path: []string{"root endpoint"}}, Kind: AssertionFailure, Err: errors.New("bad")}
	assert.Equal(t, "[root endpoint] assertion: bad", f.Error())
	assert.True(t, errors.Is(f, f.Err))
}

func TestPrintResults(t *testing.T) {
	failed := result("create", true, TestFailure{Kind: ConnectivityFailure, Err: errors.New("timeout")})
	r := Results{
		Tests: []TestResult{
			result("root", false),
			failed,
			{TestID: TestID{Path: []string{"list"}}, Skipped: true},
			{},
		},
		Failures: []TestResult{failed},
	}
	var buf bytes.Buffer
	PrintResults(&buf, r)

	assert.Equal(t, "Ran 2 test(s), 1 failed, 1 skipped\nFailed tests:\n  create (connectivity)\n", buf.String())
	assert.Equal(t, []TestID{failed.TestID}, r.FailedIDs())
}
