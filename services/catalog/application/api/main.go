package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/packstack/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/packstack/services/catalog/application/services"
)

// CatalogRoutes mounts third-party catalog search under /catalog.
func CatalogRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/search", handlers.NewSearchHandler(svcs).Execute)
		r.Get("/compare", handlers.NewCompareHandler(svcs).Execute)
		r.Get("/walmart/stores/{id}", handlers.NewStoresHandler(svcs).Execute)
		r.Get("/{source}/product/{id}", handlers.NewProductHandler(svcs).Execute)
	})
}
