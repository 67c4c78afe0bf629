package envelope

import (
	"fmt"
	"time"
)

// ErrorResponse is the uniform error envelope every failed request gets,
// whatever layer it failed in.
type ErrorResponse struct {
	Success    bool              `json:"success"`
	Error      string            `json:"error"`
	Details    string            `json:"details,omitempty"`
	Required   map[string]string `json:"required,omitempty"`
	Received   map[string]string `json:"received,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	Path       string            `json:"path,omitempty"`
	Method     string            `json:"method,omitempty"`
}

func NewError(code, details string) ErrorResponse {
	return ErrorResponse{Error: code, Details: details}
}

// ValidationError is the tagged verdict a validator returns: a short
// machine-usable code plus a human-readable detail. Validators never
// return Go errors for client-caused input problems.
type ValidationError struct {
	Code    string
	Details string
}

// Timestamp formats t the way every response reports it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Elapsed renders a request duration as "<n>ms".
func Elapsed(start time.Time) string {
	return fmt.Sprintf("%dms", time.Since(start).Milliseconds())
}
