package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/packstack/services/trip/domain/models"
)

// PlanStore keeps draft meal plans for the lifetime of a planning workflow.
// Every method returns domain.ErrMealPlanNotFound for unknown, foreign or expired plans.
type PlanStore interface {
	Save(ctx context.Context, plan *models.Plan) error
	Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Plan, error)
	// Update loads the plan, applies fn and writes it back atomically.
	// If fn returns an error nothing is written.
	Update(ctx context.Context, ownerID, id uuid.UUID, fn func(*models.Plan) error) (*models.Plan, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
