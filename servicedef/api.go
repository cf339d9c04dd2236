// Package servicedef defines the wire format of the backend API that the smoke tests exercise.
package servicedef

// Paths relative to the API base URL ({backend}/api).
const (
	RootPath   = "/"
	StatusPath = "/status"
)

// Greeting is the message that the root endpoint must return.
const Greeting = "Hello World"

// FieldMessage is the JSON property of RootResponse that holds the greeting.
const FieldMessage = "message"

// JSON property names of a status check.
const (
	FieldID         = "id"
	FieldClientName = "client_name"
	FieldTimestamp  = "timestamp"
)

// RootResponse is the body of GET /api/.
type RootResponse struct {
	Message string `json:"message"`
}

// StatusCheckCreate is the body of POST /api/status.
type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}

// StatusCheck is the record returned by POST /api/status, and the element type of the array
// returned by GET /api/status. The id and timestamp are assigned by the backend.
type StatusCheck struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Timestamp  string `json:"timestamp"`
}
