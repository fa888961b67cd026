package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inspect-server/internal/validators"
	"github.com/MKhiriev/go-inspect-server/models"
)

// ItemValidationService rejects pagination values that break the configured
// limits before delegating to the wrapped ItemService.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService(maxPageSize uint) ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewPaginationValidator(maxPageSize),
	}
}

func (v *ItemValidationService) ListItems(ctx context.Context, pagination models.Pagination) ([]models.Item, error) {
	if err := v.validator.Validate(ctx, pagination); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPagination, err)
	}

	return v.inner.ListItems(ctx, pagination)
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.inner = inner
	return v
}
