package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ghuser/packstack/pkg/logger"
	"github.com/ghuser/packstack/services/catalog/domain"
	"github.com/ghuser/packstack/services/catalog/domain/models"
	"github.com/ghuser/packstack/services/catalog/domain/repositories"
)

// CatalogService fronts the configured third-party catalogs. Every product
// leaving it has been normalized into models.CatalogProduct.
type CatalogService struct {
	catalogs map[models.Source]repositories.Catalog
	stores   repositories.StoreLocator
	log      logger.Logger
}

// NewCatalogService registers catalogs by their Source. stores may be nil.
func NewCatalogService(catalogs []repositories.Catalog, stores repositories.StoreLocator, log logger.Logger) *CatalogService {
	m := make(map[models.Source]repositories.Catalog, len(catalogs))
	for _, c := range catalogs {
		m[c.Source()] = c
	}
	return &CatalogService{catalogs: m, stores: stores, log: log}
}

// Sources lists configured catalogs in name order.
func (s *CatalogService) Sources() []models.Source {
	out := make([]models.Source, 0, len(s.catalogs))
	for src := range s.catalogs {
		out = append(out, src)
	}
	slices.Sort(out)
	return out
}

// Search runs a keyword search against one source.
func (s *CatalogService) Search(ctx context.Context, source string, q repositories.SearchQuery) ([]models.CatalogProduct, error) {
	c, err := s.catalog(source)
	if err != nil {
		return nil, err
	}
	q.Keywords = strings.TrimSpace(q.Keywords)

	found, err := c.Search(ctx, q)
	if err != nil {
		s.log.WarnContext(ctx, "catalog search failed", "source", c.Source(), "error", err)
		return nil, err
	}
	out := make([]models.CatalogProduct, 0, len(found))
	for _, p := range found {
		out = append(out, p.Normalize())
	}
	s.log.DebugContext(ctx, "catalog search", "source", c.Source(), "results", len(out))
	return out, nil
}

// Product fetches one product by its source-specific id.
func (s *CatalogService) Product(ctx context.Context, source, id string) (models.CatalogProduct, error) {
	c, err := s.catalog(source)
	if err != nil {
		return models.CatalogProduct{}, err
	}
	p, err := c.Product(ctx, strings.TrimSpace(id))
	if err != nil {
		return models.CatalogProduct{}, err
	}
	return p.Normalize(), nil
}

// Comparison is the outcome of a cross-catalog price comparison.
type Comparison struct {
	Amazon  []models.CatalogProduct
	Walmart []models.CatalogProduct
	Pairs   []models.PriceComparison
}

// Compare searches Amazon and Walmart concurrently and pairs listings of the
// same product. Both catalogs must be configured; either search failing fails the comparison.
func (s *CatalogService) Compare(ctx context.Context, q repositories.SearchQuery) (*Comparison, error) {
	var res Comparison
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		res.Amazon, err = s.Search(gctx, string(models.SourceAmazon), q)
		return err
	})
	g.Go(func() error {
		var err error
		res.Walmart, err = s.Search(gctx, string(models.SourceWalmart), q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Pairs = models.ComparePrices(res.Amazon, res.Walmart)
	s.log.DebugContext(ctx, "catalog price comparison",
		"amazon", len(res.Amazon), "walmart", len(res.Walmart), "pairs", len(res.Pairs))
	return &res, nil
}

// Stores lists Walmart stores near zipCode that carry the item.
func (s *CatalogService) Stores(ctx context.Context, itemID, zipCode string) ([]models.WalmartStore, error) {
	if s.stores == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotConfigured, models.SourceWalmart)
	}
	return s.stores.Stores(ctx, itemID, zipCode)
}

func (s *CatalogService) catalog(source string) (repositories.Catalog, error) {
	src, err := models.ParseSource(source)
	if err != nil {
		return nil, err
	}
	c, ok := s.catalogs[src]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotConfigured, src)
	}
	return c, nil
}
