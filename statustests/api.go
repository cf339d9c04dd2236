package statustests

import (
	"net/http"

	"github.com/statuscheck/smoke-tests/framework"
	"github.com/statuscheck/smoke-tests/framework/harness"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// T represents a test or subtest in the status check test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner. To make test assertions, you can use the assert and require
// packages, passing the *T as if it were a *testing.T. The request helpers also have assertions
// built in, causing the test to stop immediately if the backend cannot be reached or answers
// with the wrong status, so that individual tests stay short.
type T struct {
	context *framework.Context
	harness *harness.TestHarness
	params  SuiteParams
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. A failure in the subtest does not stop this test.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, harness: t.harness, params: t.params})
	})
}

// Info prints a progress message for the test.
func (t *T) Info(format string, args ...interface{}) {
	t.context.Info(format, args...)
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// ClientName is the client_name that create requests should use.
func (t *T) ClientName() string {
	return t.params.ClientName
}

// RequireGet sends a GET request to a path under the API base URL. If no response is
// received at all, the test fails with a connectivity failure and exits.
func (t *T) RequireGet(path string) harness.Response {
	resp, err := t.harness.Get(path, t.context.DebugLogger())
	t.requireResponse(err)
	return resp
}

// RequirePostJSON is the POST counterpart of RequireGet.
func (t *T) RequirePostJSON(path string, body ldvalue.Value) harness.Response {
	resp, err := t.harness.PostJSON(path, body, t.context.DebugLogger())
	t.requireResponse(err)
	return resp
}

func (t *T) requireResponse(err error) {
	if err != nil {
		t.context.Fail(framework.ConnectivityFailure, err)
		t.FailNow()
	}
}

// RequireOKStatus fails and exits the test if the response status is not 200. If showBody is
// true, the response text is included in the failure message.
func (t *T) RequireOKStatus(resp harness.Response, description string, showBody bool) {
	if resp.StatusCode == http.StatusOK {
		return
	}
	if showBody {
		t.Errorf("%s failed: HTTP %d\nResponse: %s", description, resp.StatusCode, string(resp.Body))
	} else {
		t.Errorf("%s failed: HTTP %d", description, resp.StatusCode)
	}
	t.FailNow()
}

// RequireJSONOfType parses the response body, failing and exiting the test if it is not JSON
// or if it is not of the expected type.
func (t *T) RequireJSONOfType(resp harness.Response, expected ldvalue.ValueType) ldvalue.Value {
	value, err := resp.JSON()
	if err != nil {
		t.Errorf("%s", err)
		t.FailNow()
	}
	if value.Type() != expected {
		t.Errorf("expected %s, got %s: %s", expected, value.Type(), value.JSONString())
		t.FailNow()
	}
	return value
}
