package http

import (
	"net/http"

	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/MKhiriev/go-inspect-server/internal/utils"
)

const helloMessage = "Hello, World!"

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteText(w, helloMessage, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("write hello response")
	}
}
