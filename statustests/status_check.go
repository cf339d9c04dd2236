package statustests

import (
	"github.com/statuscheck/smoke-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

var requiredStatusCheckFields = []string{
	servicedef.FieldID,
	servicedef.FieldClientName,
	servicedef.FieldTimestamp,
}

// StatusCheck is the record that the backend creates and lists, as the harness saw it. The
// backend's JSON is checked loosely, so non-string values are kept as their JSON text rather
// than decoded into servicedef.StatusCheck.
type StatusCheck servicedef.StatusCheck

func newStatusCheckRequest(clientName string) ldvalue.Value {
	return ldvalue.ObjectBuild().Set(servicedef.FieldClientName, ldvalue.String(clientName)).Build()
}

// parseStatusCheck reads a status check from a JSON object. It also returns the names of any
// required fields that were absent or null.
func parseStatusCheck(v ldvalue.Value) (StatusCheck, []string) {
	var missing []string
	for _, name := range requiredStatusCheckFields {
		if v.GetByKey(name).IsNull() {
			missing = append(missing, name)
		}
	}
	return StatusCheck{
		ID:         valueText(v.GetByKey(servicedef.FieldID)),
		ClientName: valueText(v.GetByKey(servicedef.FieldClientName)),
		Timestamp:  valueText(v.GetByKey(servicedef.FieldTimestamp)),
	}, missing
}

func valueText(v ldvalue.Value) string {
	switch v.Type() {
	case ldvalue.NullType:
		return ""
	case ldvalue.StringType:
		return v.StringValue()
	default:
		return v.JSONString()
	}
}
