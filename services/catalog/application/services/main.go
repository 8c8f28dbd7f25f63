package services

import (
	"github.com/ghuser/packstack/pkg/app"
	"github.com/ghuser/packstack/services/catalog/domain/repositories"
	"github.com/ghuser/packstack/services/catalog/infrastructure/amazon"
	"github.com/ghuser/packstack/services/catalog/infrastructure/upstream"
	"github.com/ghuser/packstack/services/catalog/infrastructure/walmart"
)

// Services is the application-layer service container for catalog search.
type Services struct {
	Catalog *CatalogService
}

// New wires the catalogs that have credentials. Missing ones answer ErrCatalogNotConfigured.
func New(a *app.Application) *Services {
	cfg := a.Config
	metrics := upstream.NewMetrics()

	var catalogs []repositories.Catalog
	var stores repositories.StoreLocator
	if cfg.AmazonEnabled() {
		catalogs = append(catalogs, amazon.NewClient(amazon.Config{
			AccessKey:  cfg.AmazonAccessKey,
			SecretKey:  cfg.AmazonSecretKey,
			PartnerTag: cfg.AmazonPartnerTag,
			Host:       cfg.AmazonHost,
			Region:     cfg.AmazonRegion,
		}, nil, metrics))
	}
	if cfg.WalmartEnabled() {
		wm := walmart.NewClient(walmart.Config{
			ConsumerID: cfg.WalmartConsumerID,
			PrivateKey: cfg.WalmartPrivateKey,
			BaseURL:    cfg.WalmartBaseURL,
		}, nil, metrics)
		catalogs = append(catalogs, wm)
		stores = wm
	}

	log := a.Logger.With("service", "catalog")
	svc := NewCatalogService(catalogs, stores, log)
	log.Info("catalog sources configured", "sources", svc.Sources())
	return &Services{Catalog: svc}
}
