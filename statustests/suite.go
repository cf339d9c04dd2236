package statustests

import (
	"github.com/statuscheck/smoke-tests/framework"
	"github.com/statuscheck/smoke-tests/framework/harness"
)

// DefaultClientName is the client_name sent by the create test unless overridden.
const DefaultClientName = "Test Client Modal Verification"

// Test names, which are also what the --run and --skip filters match against.
const (
	RootEndpointTest      = "root endpoint"
	CreateStatusCheckTest = "create status check"
	ListStatusChecksTest  = "list status checks"
)

// SuiteParams holds the inputs that a test run can vary.
type SuiteParams struct {
	ClientName string
}

// RunTestSuite runs every test in order. Each one runs regardless of whether the ones before it
// passed, so a single run reports on the whole API surface.
func RunTestSuite(
	testHarness *harness.TestHarness,
	params SuiteParams,
	filter framework.Filter,
	testLogger framework.TestLogger,
	debugLogger framework.Logger,
) framework.Results {
	if params.ClientName == "" {
		params.ClientName = DefaultClientName
	}
	return framework.Run(filter, testLogger, debugLogger, func(c *framework.Context) {
		t := &T{context: c, harness: testHarness, params: params}

		t.Run(RootEndpointTest, DoRootEndpointTest)
		t.Run(CreateStatusCheckTest, DoCreateStatusCheckTest)
		t.Run(ListStatusChecksTest, DoListStatusChecksTest)
	})
}
