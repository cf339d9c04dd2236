package statustests

import (
	"github.com/statuscheck/smoke-tests/servicedef"

	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoRootEndpointTest(t *T) {
	resp := t.RequireGet(servicedef.RootPath)
	t.RequireOKStatus(resp, "root endpoint", false)

	data := t.RequireJSONOfType(resp, ldvalue.ObjectType)
	require.Equal(t, servicedef.Greeting, data.GetByKey(servicedef.FieldMessage).StringValue(),
		"unexpected response: %s", data.JSONString())

	t.Info("Root endpoint working correctly")
}
