package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a normalized error from a non-2xx panel API response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError unwraps err into an *APIError if there is one in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// normalizeError extracts a human-readable message from an error response.
// Priority: structured error.message, then a top-level message field, then
// the transport-level status text.
func normalizeError(method, path string, status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var envelope struct {
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.Error != nil && envelope.Error.Message != "":
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		case envelope.Message != "":
			apiErr.Message = envelope.Message
		}
	}

	if apiErr.Message == "" {
		if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") {
			apiErr.Message = text
		} else {
			apiErr.Message = http.StatusText(status)
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = "request failed"
	}

	return fmt.Errorf("%s %s: %w", method, path, apiErr)
}
