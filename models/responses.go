// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// APIResponse is the uniform JSON envelope written for every non-2xx
// response of the service.
//
// Values are built once per outcome through [NewResponse] or
// [NewFailureResponse] and are not modified afterwards. Success is derived
// from StatusCode and is true only for 2xx codes.
type APIResponse[T any] struct {
	// StatusCode mirrors the HTTP status written with the envelope.
	StatusCode int `json:"status_code"`

	// Success reports whether StatusCode is in the 2xx range.
	Success bool `json:"success"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`

	// Data is the optional payload. A nil Data is serialized as null.
	Data *T `json:"data"`
}

// NewResponse builds an envelope carrying data. Success is computed from
// statusCode.
func NewResponse[T any](statusCode int, message string, data *T) APIResponse[T] {
	return APIResponse[T]{
		StatusCode: statusCode,
		Success:    isSuccessStatus(statusCode),
		Message:    message,
		Data:       data,
	}
}

// NewFailureResponse builds an envelope without payload, as used by error
// responses.
func NewFailureResponse(statusCode int, message string) APIResponse[struct{}] {
	return NewResponse[struct{}](statusCode, message, nil)
}

func isSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
