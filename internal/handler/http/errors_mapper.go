package http

import (
	"errors"

	"github.com/MKhiriev/go-inspect-server/internal/apperror"
	"github.com/MKhiriev/go-inspect-server/internal/service"
	"github.com/MKhiriev/go-inspect-server/internal/validators"
)

var errorKindMap = map[error]apperror.Kind{
	service.ErrInvalidPagination:   apperror.InvalidInput,
	validators.ErrPageSizeTooLarge: apperror.InvalidInput,
	validators.ErrUnknownField:     apperror.InvalidInput,
	validators.ErrUnsupportedType:  apperror.Generic,

	service.ErrVersionIsNotSpecified: apperror.Generic,
}

// appErrorFrom classifies err for the failure envelope. Errors that already
// carry a kind are returned as is; unknown errors stay unclassified and are
// reported as Generic by the responder.
func appErrorFrom(err error) error {
	if _, ok := apperror.KindOf(err); ok {
		return err
	}

	for target, kind := range errorKindMap {
		if errors.Is(err, target) {
			return apperror.New(kind, err.Error())
		}
	}
	return err
}
