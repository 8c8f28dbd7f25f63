package repositories

import (
	"context"

	"github.com/ghuser/packstack/services/catalog/domain/models"
)

// SearchQuery is a keyword search against one catalog.
type SearchQuery struct {
	Keywords   string
	Category   string // PA-API SearchIndex or Walmart categoryId
	MaxResults int
}

// Catalog is a third-party product catalog.
// Implementations return domain.ErrProductNotFound and wrap domain.ErrUpstream.
type Catalog interface {
	Source() models.Source
	Search(ctx context.Context, q SearchQuery) ([]models.SourceProduct, error)
	Product(ctx context.Context, id string) (models.SourceProduct, error)
}

// StoreLocator looks up physical stores that stock an item.
type StoreLocator interface {
	Stores(ctx context.Context, itemID, zipCode string) ([]models.WalmartStore, error)
}
