package responses

import "github.com/goccy/go-json"

// APIError is the best-effort error body of the salon API. Errors is either a
// list of messages or a map of field name to messages.
type APIError struct {
	Errors  json.RawMessage `json:"errors,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}
