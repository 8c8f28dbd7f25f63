package services

import (
	"github.com/ghuser/packstack/pkg/app"
	tripredis "github.com/ghuser/packstack/services/trip/infrastructure/redis"
)

// Services is the application-layer service container for trip planning.
type Services struct {
	Plan *PlanService
}

// New wires trip services. Plans are Redis-only drafts; items come from the inventory context.
func New(a *app.Application, items ItemSource) *Services {
	store := tripredis.NewPlanStore(a.Redis, a.Config.MealPlanTTL)
	return &Services{
		Plan: NewPlanService(store, items, a.Logger.With("service", "trip")),
	}
}
