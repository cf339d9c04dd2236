package statustests

import (
	"strings"

	"github.com/statuscheck/smoke-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoCreateStatusCheckTest(t *T) {
	resp := t.RequirePostJSON(servicedef.StatusPath, newStatusCheckRequest(t.ClientName()))
	t.RequireOKStatus(resp, "status creation", true)

	data := t.RequireJSONOfType(resp, ldvalue.ObjectType)
	created, missing := parseStatusCheck(data)
	if len(missing) > 0 {
		t.Errorf("missing required fields in response (%s): %s", strings.Join(missing, ", "), data.JSONString())
		t.FailNow()
	}
	if created.ClientName != t.ClientName() {
		t.Debug("client_name was echoed as %q, not %q", created.ClientName, t.ClientName())
	}

	t.Info("Status check creation working correctly")
	t.Info("Created status with ID: %s", created.ID)
}

func DoListStatusChecksTest(t *T) {
	resp := t.RequireGet(servicedef.StatusPath)
	t.RequireOKStatus(resp, "status retrieval", false)

	data := t.RequireJSONOfType(resp, ldvalue.ArrayType)

	t.Info("Status retrieval working correctly")
	t.Info("Found %d status records", data.Count())
	if data.Count() > 0 {
		latest, _ := parseStatusCheck(data.GetByIndex(data.Count() - 1))
		if latest.ClientName == "" {
			t.Info("Latest record has no client_name")
		} else {
			t.Info("Latest record: %s", latest.ClientName)
		}
	}
}
