package apperror

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-inspect-server/internal/utils"
	"github.com/MKhiriev/go-inspect-server/models"
)

// Response builds the failure envelope and status for err.
//
// An [*AppError] anywhere in the chain determines the status and its Error
// text becomes the message. Any other error is reported as [Generic] with a
// fixed message so internal details are not leaked.
func Response(err error) (int, models.APIResponse[struct{}]) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = New(Generic, http.StatusText(http.StatusInternalServerError))
	}

	status := appErr.Kind.Status()
	return status, models.NewFailureResponse(status, appErr.Error())
}

// WriteResponse writes the failure envelope for err to w.
func WriteResponse(w http.ResponseWriter, err error) {
	status, body := Response(err)
	_, _ = utils.WriteJSON(w, body, status)
}
