package responses

import "time"

// APIResponse is the envelope every JSON endpoint returns. Data is set on
// success, Error on failure, never both.
type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
	Data      *T        `json:"data,omitempty"`
}
