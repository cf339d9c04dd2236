// Package harness provides HTTP access to the backend under test.
package harness

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/statuscheck/smoke-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// APIPathPrefix is the path under the backend base URL where the API is mounted.
const APIPathPrefix = "/api"

// DefaultRequestTimeout bounds each individual request.
const DefaultRequestTimeout = time.Second * 10

const maxLoggedBodyLength = 2000

// TestHarness sends requests to the backend under test. Each request is independent: there is
// no retry, and each one has its own timeout.
type TestHarness struct {
	apiBaseURL string
	client     *http.Client
	logger     framework.Logger
}

// Response is a fully read HTTP response. The underlying connection has already been released
// by the time a Response is returned.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// RequestError means that a request did not get any HTTP response at all.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Timeout returns true if the request failed because the per-request timeout expired.
func (e *RequestError) Timeout() bool {
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// NewTestHarness creates a TestHarness for a backend whose base URL (scheme, host, and optional
// port) is backendBaseURL. It does not contact the backend.
func NewTestHarness(
	backendBaseURL string,
	requestTimeout time.Duration,
	debugLogger framework.Logger,
) *TestHarness {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	return &TestHarness{
		apiBaseURL: strings.TrimRight(backendBaseURL, "/") + APIPathPrefix,
		client:     &http.Client{Timeout: requestTimeout},
		logger:     debugLogger,
	}
}

// APIBaseURL returns the URL that request paths are relative to.
func (h *TestHarness) APIBaseURL() string {
	return h.apiBaseURL
}

// Get sends a GET request to a path under the API base URL.
func (h *TestHarness) Get(path string, logger framework.Logger) (Response, error) {
	req, err := http.NewRequest(http.MethodGet, h.apiBaseURL+path, nil)
	if err != nil {
		return Response{}, err
	}
	return h.do(req, logger)
}

// PostJSON sends a POST request with a JSON body to a path under the API base URL.
func (h *TestHarness) PostJSON(path string, body ldvalue.Value, logger framework.Logger) (Response, error) {
	data := []byte(body.JSONString())
	req, err := http.NewRequest(http.MethodPost, h.apiBaseURL+path, bytes.NewBuffer(data))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if logger != nil {
		logger.Printf("Request body: %s", string(data))
	}
	return h.do(req, logger)
}

func (h *TestHarness) do(req *http.Request, logger framework.Logger) (Response, error) {
	if logger == nil {
		logger = h.logger
	}
	req.Header.Set("Accept", "application/json")
	logger.Printf("%s %s", req.Method, req.URL)

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		reqErr := &RequestError{Method: req.Method, URL: req.URL.String(), Err: err}
		logger.Printf("Request failed after %s: %s", time.Since(start), err)
		return Response{}, reqErr
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &RequestError{Method: req.Method, URL: req.URL.String(),
			Err: fmt.Errorf("error reading response body: %w", err)}
	}
	logger.Printf("Got HTTP %d after %s: %s", resp.StatusCode, time.Since(start), truncate(string(data)))

	return Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// JSON parses the response body. Any valid JSON is accepted; it is up to the caller to decide
// whether the value has the right shape.
func (r Response) JSON() (ldvalue.Value, error) {
	var v ldvalue.Value
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return ldvalue.Null(), fmt.Errorf("response was not valid JSON (%s): %s", err, truncate(string(r.Body)))
	}
	return v, nil
}

func truncate(s string) string {
	if len(s) <= maxLoggedBodyLength {
		return s
	}
	return s[:maxLoggedBodyLength] + "..."
}
