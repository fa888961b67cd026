package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrPageSizeTooLarge = errors.New("page_size exceeds the allowed maximum")
)
