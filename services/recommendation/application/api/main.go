package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/ghuser/packstack/services/recommendation/application/handlers"
	appsvcs "github.com/ghuser/packstack/services/recommendation/application/services"
)

// RecommendationRoutes mounts /recommendations, rate limited per client IP.
func RecommendationRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/recommendations", func(r chi.Router) {
		r.Use(httprate.LimitByIP(10, time.Minute))
		r.Post("/gear", handlers.NewPostGearHandler(svcs).Execute)
	})
}
