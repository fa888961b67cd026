package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-inspect-server/internal/apperror"
	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/MKhiriev/go-inspect-server/internal/utils"
	"github.com/MKhiriev/go-inspect-server/models"
	"github.com/gorilla/schema"
)

// queryDecoder caches struct metadata and is safe for concurrent use.
var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// paginationKeys must all be present in the query. schema's required check
// matches key prefixes, so page_size alone would satisfy page.
var paginationKeys = []string{"page", "page_size"}

func requireQueryKeys(values url.Values, keys ...string) error {
	for _, key := range keys {
		if _, ok := values[key]; !ok {
			return fmt.Errorf("%w: %s", errMissingQueryParam, key)
		}
	}
	return nil
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query()
	if err := requireQueryKeys(query, paginationKeys...); err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Msg("incomplete pagination query")
		apperror.WriteResponse(w, apperror.Wrap(apperror.InvalidInput, detailInvalidQuery, err))
		return
	}

	var pagination models.Pagination
	if err := queryDecoder.Decode(&pagination, query); err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Msg("failed to decode pagination")
		apperror.WriteResponse(w, apperror.Wrap(apperror.InvalidInput, detailInvalidQuery, err))
		return
	}

	items, err := h.services.ItemService.ListItems(r.Context(), pagination)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Msg("failed to list items")
		apperror.WriteResponse(w, appErrorFrom(err))
		return
	}

	if _, err = utils.WriteJSON(w, items, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Msg("failed to write items")
	}
}
