package servicedef

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCheckUsesFieldNames(t *testing.T) {
	data, err := json.Marshal(StatusCheck{ID: "abc", ClientName: "X", Timestamp: "2024-01-01T00:00:00"})
	require.NoError(t, err)

	var props map[string]string
	require.NoError(t, json.Unmarshal(data, &props))
	assert.Equal(t, map[string]string{
		FieldID:         "abc",
		FieldClientName: "X",
		FieldTimestamp:  "2024-01-01T00:00:00",
	}, props)
}

func TestRootResponseUsesFieldName(t *testing.T) {
	data, err := json.Marshal(RootResponse{Message: Greeting})
	require.NoError(t, err)
	assert.JSONEq(t, `{"`+FieldMessage+`": "Hello World"}`, string(data))
}
