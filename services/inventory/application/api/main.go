package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/packstack/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/packstack/services/inventory/application/services"
)

// ItemRoutes registers item and inventory view endpoints on the provided chi router.
func ItemRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/item", func(r chi.Router) {
		r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
	})
	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
		r.Get("/gear", handlers.NewGearViewHandler(svcs).Execute)
		r.Get("/food", handlers.NewFoodViewHandler(svcs).Execute)
	})
}
