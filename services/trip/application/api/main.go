package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/packstack/services/trip/application/handlers"
	appsvcs "github.com/ghuser/packstack/services/trip/application/services"
)

// PlanRoutes registers meal plan endpoints on the provided chi router.
func PlanRoutes(r chi.Router, svcs *appsvcs.Services) {
	meals := handlers.NewMealsHandler(svcs)
	r.Route("/trip/plan", func(r chi.Router) {
		r.Post("/", handlers.NewPostPlanHandler(svcs).Execute)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetPlanHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeletePlanHandler(svcs).Execute)
			r.Post("/meals", meals.Add)
			r.Delete("/meals", meals.Remove)
			r.Get("/nutrition", handlers.NewNutritionHandler(svcs).Execute)
			r.Get("/foods", handlers.NewFoodsHandler(svcs).Execute)
			r.Post("/summary", handlers.NewSummaryHandler(svcs).Execute)
		})
	})
}
