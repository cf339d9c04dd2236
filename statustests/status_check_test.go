package statustests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestParseStatusCheck(t *testing.T) {
	v := ldvalue.Parse([]byte(`{"id": 7, "client_name": "X", "timestamp": "2024-01-01T00:00:00"}`))

	check, missing := parseStatusCheck(v)

	assert.Empty(t, missing)
	assert.Equal(t, StatusCheck{ID: "7", ClientName: "X", Timestamp: "2024-01-01T00:00:00"}, check)
}

func TestParseStatusCheckReportsMissingFields(t *testing.T) {
	_, missing := parseStatusCheck(ldvalue.Parse([]byte(`{"client_name": "X"}`)))

	assert.Equal(t, []string{"id", "timestamp"}, missing)
}

func TestNewStatusCheckRequest(t *testing.T) {
	assert.Equal(t, `{"client_name":"X"}`, newStatusCheckRequest("X").JSONString())
}
