package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inspect-server/internal/logger"
	"github.com/MKhiriev/go-inspect-server/models"
)

type itemService struct{}

func NewItemService() ItemService {
	return &itemService{}
}

// ListItems returns PageSize items with ids 1..PageSize named "Item <id>".
// The page number does not influence the result.
func (s *itemService) ListItems(ctx context.Context, pagination models.Pagination) ([]models.Item, error) {
	log := logger.FromContext(ctx)
	log.Info().
		Uint("page", pagination.Page).
		Uint("page_size", pagination.PageSize).
		Msg("listing items")

	items := make([]models.Item, 0, pagination.PageSize)
	for i := uint(1); i <= pagination.PageSize; i++ {
		items = append(items, models.Item{
			ID:   i,
			Name: fmt.Sprintf("Item %d", i),
		})
	}

	return items, nil
}
