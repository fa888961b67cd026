package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-inspect-server/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// ResponseError is a non-2xx answer of the server. Envelope is set when the
// body carried the JSON failure envelope.
type ResponseError struct {
	StatusCode int
	Envelope   *models.APIResponse[struct{}]
	Body       string

	sentinel error
}

func (e *ResponseError) Error() string {
	msg := e.Body
	if e.Envelope != nil {
		msg = e.Envelope.Message
	}
	if e.sentinel != nil {
		return fmt.Sprintf("%v: %s", e.sentinel, msg)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, msg)
}

func (e *ResponseError) Unwrap() error {
	return e.sentinel
}
