package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-inspect-server/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Body:       body,
		sentinel:   statusErrors[resp.StatusCode()],
	}

	var envelope models.APIResponse[struct{}]
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.StatusCode != 0 {
		respErr.Envelope = &envelope
	}

	return respErr
}
