package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/statuscheck/smoke-tests/framework"
	"github.com/statuscheck/smoke-tests/framework/harness"
	"github.com/statuscheck/smoke-tests/statustests"

	"github.com/fatih/color"
)

const testTimeFormat = "2006-01-02 15:04:05"

var separator = strings.Repeat("=", 60)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run is the whole program; it returns the process exit code. No request is sent to the
// backend unless its URL was resolved.
func run(args []string, out, errOut io.Writer) int {
	var params commandParams
	if ok, help := params.Read(args, errOut); !ok {
		if help {
			return 0
		}
		return 1
	}
	if params.noColor {
		color.NoColor = true
	}

	fmt.Fprintln(out, "Starting Backend API Tests...")
	fmt.Fprintf(out, "Test Time: %s\n", time.Now().Format(testTimeFormat))

	source := params.envSource()
	backendURL := source.Resolve(log.New(out, "", 0))
	if !backendURL.IsDefined() {
		failColor.Fprintf(out, "CRITICAL: Could not get backend URL from %s\n", source)
		return 1
	}

	testHarness := harness.NewTestHarness(backendURL.StringValue(), params.timeout, nil)

	fmt.Fprintf(out, "Testing Backend APIs at: %s\n", testHarness.APIBaseURL())
	fmt.Fprintln(out, separator)
	framework.PrintFilterDescription(out, params.filters)

	testLogger := &ConsoleTestLogger{
		Out:                  out,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := statustests.RunTestSuite(
		testHarness,
		statustests.SuiteParams{ClientName: params.clientName},
		params.filters.AsFilter,
		testLogger,
		nil,
	)

	fmt.Fprintln(out)
	fmt.Fprintln(out, separator)
	framework.PrintResults(out, results)
	if results.OK() {
		passColor.Fprintln(out, "ALL BACKEND API TESTS PASSED")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Backend APIs are working correctly")
		return 0
	}
	failColor.Fprintln(out, "SOME BACKEND API TESTS FAILED")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To rerun the failed tests with debug output:")
	fmt.Fprintf(out, "  %s\n", params.rerunCommand(filepath.Base(args[0]), results.FailedIDs()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Backend API issues detected")
	return 1
}
