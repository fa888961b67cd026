//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-inspect-server/models"
)

// ItemService produces the paginated item listing.
type ItemService interface {
	ListItems(ctx context.Context, pagination models.Pagination) ([]models.Item, error)
}

// AppInfoService exposes build and version information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ItemServiceWrapper defines middleware composition for ItemService.
// Implementations wrap an existing ItemService to add behavior such as
// validation.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService // returns a decorated ItemService applying additional behavior
}
