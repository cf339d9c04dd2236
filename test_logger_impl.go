package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/statuscheck/smoke-tests/framework"

	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	skipColor = color.New(color.FgYellow)
)

type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Fprintf(c.Out, "\n[%s]\n", id)
}

func (c *ConsoleTestLogger) TestInfo(id framework.TestID, message string) {
	fmt.Fprintf(c.Out, "  %s\n", message)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	message := err.Error()
	var f framework.TestFailure
	if errors.As(err, &f) {
		message = f.Err.Error()
		if f.Kind == framework.ConnectivityFailure {
			message = "connection error: " + message
		}
	}
	for _, line := range strings.Split(message, "\n") {
		failColor.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if failed {
		failColor.Fprintf(c.Out, "  FAILED: %s\n", id)
	} else {
		passColor.Fprintf(c.Out, "  PASSED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		skipColor.Fprintf(c.Out, "  SKIPPED: %s\n", id)
	} else {
		skipColor.Fprintf(c.Out, "  SKIPPED: %s (%s)\n", id, reason)
	}
}
