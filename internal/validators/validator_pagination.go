package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inspect-server/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldPage     = "page"
	FieldPageSize = "page_size"
)

// PaginationValidator checks [models.Pagination] values against the
// configured page size limit. A zero limit disables the check.
type PaginationValidator struct {
	validate    *validator.Validate
	maxPageSize uint
}

func NewPaginationValidator(maxPageSize uint) Validator {
	return &PaginationValidator{
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		maxPageSize: maxPageSize,
	}
}

// Validate accepts models.Pagination or *models.Pagination. With no fields
// every rule is checked; otherwise only the named fields are.
func (v *PaginationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Pagination:
		return v.validatePagination(ctx, value, fields...)
	case *models.Pagination:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePagination(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *PaginationValidator) validatePagination(ctx context.Context, p models.Pagination, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldPageSize}
	}

	for _, field := range fields {
		switch field {
		case FieldPage:
			// any unsigned page number is accepted
		case FieldPageSize:
			if v.maxPageSize == 0 {
				continue
			}
			rule := fmt.Sprintf("lte=%d", v.maxPageSize)
			if err := v.validate.VarCtx(ctx, p.PageSize, rule); err != nil {
				return fmt.Errorf("%w (%d > %d): %w", ErrPageSizeTooLarge, p.PageSize, v.maxPageSize, err)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
