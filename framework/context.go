package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

type environment struct {
	results     Results
	testLogger  TestLogger
	filter      Filter
	debugLogger Logger
}

// Context is the framework's equivalent of testing.T. It implements the TestingT interfaces of
// testify's assert and require packages, so those can be used directly inside tests.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run executes action as the root of a test tree and returns the accumulated results.
//
// If debugLogger is non-nil, every test's debug output is also sent there as it happens, in
// addition to being captured for the test logger.
func Run(
	filter Filter,
	testLogger TestLogger,
	debugLogger Logger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:      filter,
		testLogger:  testLogger,
		debugLogger: debugLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil && !c.skipped {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				f := TestFailure{ID: c.id, Kind: AssertionFailure, Err: addError}
				c.errors = append(c.errors, f)
				c.env.testLogger.TestError(c.id, f)
			}
		}
		result := TestResult{TestID: c.id, Errors: c.errors, Failed: c.failed, Skipped: c.skipped}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest. A failure or FailNow in the subtest ends only the subtest; the caller
// carries on with whatever it does next.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		reason := "excluded by filter parameters"
		c.env.results.Tests = append(c.env.results.Tests, TestResult{TestID: id, Skipped: true})
		c.env.testLogger.TestSkipped(id, reason)
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Fail records a failure of the given kind without stopping the test.
func (c *Context) Fail(kind FailureKind, err error) {
	c.failed = true
	f := TestFailure{ID: c.id, Kind: kind, Err: err}
	c.errors = append(c.errors, f)
	c.env.testLogger.TestError(c.id, f)
}

// Errorf records an assertion failure without stopping the test. This is what testify's
// assert functions call.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.Fail(AssertionFailure, reformatError(fmt.Errorf(format, args...)))
}

// FailNow stops the current test. This is what testify's require functions call.
func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Info reports a progress message that is always shown, unlike Debug output.
func (c *Context) Info(message string, args ...interface{}) {
	c.env.testLogger.TestInfo(c.id, fmt.Sprintf(message, args...))
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.DebugLogger().Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	if c.env.debugLogger == nil {
		return &c.debugLogger
	}
	return teeLogger{loggers: []Logger{&c.debugLogger, c.env.debugLogger}}
}

// reformatError strips the "Error Trace" section that testify adds to its failure messages,
// and flattens its tab-aligned labels. The trace only points into this harness's own source,
// which is noise for someone reading about a backend failure.
func reformatError(err error) error {
	s := err.Error()
	if !strings.Contains(s, "Error Trace:") {
		return err
	}
	var out []string
	inTrace := false
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		isLabel := len(line) > 1 && line[0] == '\t' && line[1] != ' ' && line[1] != '\t'
		if isLabel {
			inTrace = strings.HasPrefix(line[1:], "Error Trace:")
			if parts := strings.SplitN(line[1:], "\t", 2); len(parts) == 2 {
				line = strings.TrimSpace(parts[0]) + " " + parts[1]
			}
		}
		if inTrace {
			continue
		}
		out = append(out, strings.TrimSpace(line))
	}
	return errors.New(strings.Join(out, "\n"))
}
