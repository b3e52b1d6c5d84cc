package model

// Envelope is the response shape every panel endpoint returns.
type Envelope[T any] struct {
	Success bool       `json:"success"`
	Data    *T         `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

// ErrorBody is the structured error carried inside a failed envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
