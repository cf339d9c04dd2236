package main

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/statuscheck/smoke-tests/envfile"
	"github.com/statuscheck/smoke-tests/framework"
	"github.com/statuscheck/smoke-tests/framework/harness"
	"github.com/statuscheck/smoke-tests/statustests"

	"github.com/alessio/shellescape"
	"github.com/spf13/pflag"
)

type commandParams struct {
	envFile    string
	envKey     string
	timeout    time.Duration
	clientName string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
	noColor    bool
}

// Read parses the command line. Every flag is optional; with no arguments at all, the harness
// behaves exactly as it always has. It returns false if the program should exit, and in that
// case help reports whether that is because help was requested.
func (c *commandParams) Read(args []string, errOut io.Writer) (ok bool, help bool) {
	fs := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage of %s:\n", args[0])
		fs.PrintDefaults()
	}
	fs.StringVar(&c.envFile, "env-file", envfile.DefaultPath, "file to read the backend URL from")
	fs.StringVar(&c.envKey, "env-key", envfile.DefaultKey, "variable in the env file that holds the backend URL")
	fs.DurationVar(&c.timeout, "timeout", harness.DefaultRequestTimeout, "timeout for each request")
	fs.StringVar(&c.clientName, "client-name", statustests.DefaultClientName, "client_name to use when creating a status check")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "show debug output for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show debug output for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return false, true
		}
		fmt.Fprintln(errOut, err)
		fs.Usage()
		return false, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false, false
	}
	if c.timeout <= 0 {
		fmt.Fprintln(errOut, "--timeout must be positive")
		return false, false
	}
	return true, false
}

func (c commandParams) envSource() envfile.Source {
	return envfile.Source{Path: c.envFile, Key: c.envKey}
}

// rerunCommand builds a command line that repeats this run, restricted to the given tests.
func (c commandParams) rerunCommand(program string, tests []framework.TestID) string {
	var b commandBuilder
	b.add(program)
	if c.envFile != envfile.DefaultPath {
		b.add("--env-file", c.envFile)
	}
	if c.envKey != envfile.DefaultKey {
		b.add("--env-key", c.envKey)
	}
	if c.timeout != harness.DefaultRequestTimeout {
		b.add("--timeout", c.timeout.String())
	}
	if c.clientName != statustests.DefaultClientName {
		b.add("--client-name", c.clientName)
	}
	for _, id := range tests {
		b.add("--run", "^"+regexp.QuoteMeta(id.String())+"$")
	}
	b.add("--debug")
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
