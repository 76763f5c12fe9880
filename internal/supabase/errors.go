package supabase

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is the single error shape for every failed backend call. The
// backend reports permission denials, constraint violations and missing rows
// the same way, so callers get status and message and nothing finer-grained.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase: %s (status %d)", e.Message, e.Status)
}

// newAPIError extracts a human-readable message from whichever of the
// backend's error body shapes showed up.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
		ErrorField       string `json:"error"`
	}
	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			message = payload.Message
		case payload.Msg != "":
			message = payload.Msg
		case payload.ErrorDescription != "":
			message = payload.ErrorDescription
		case payload.ErrorField != "":
			message = payload.ErrorField
		}
	}
	if message == "" {
		message = "request failed"
	}
	return &APIError{Status: status, Message: message}
}
