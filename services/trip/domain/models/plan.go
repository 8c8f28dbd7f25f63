package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	invmodels "github.com/ghuser/packstack/services/inventory/domain/models"
	tripdomain "github.com/ghuser/packstack/services/trip/domain"
)

const maxPlanNameLength = 255

// Plan is a draft trip meal plan. It lives only as long as the planning workflow
// that created it and is never written to the inventory database.
type Plan struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Meals     *invmodels.MealPlan
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPlan seeds an empty meal plan covering start..end inclusive.
func NewPlan(ownerID uuid.UUID, name string, start, end, now time.Time) (*Plan, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("plan owner is required")
	}
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > maxPlanNameLength {
		return nil, fmt.Errorf("%w: plan name exceeds %d characters", tripdomain.ErrInvalidPlanName, maxPlanNameLength)
	}

	meals, err := invmodels.NewMealPlan(start, end)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Plan{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Meals:     meals,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Touch bumps UpdatedAt.
func (p *Plan) Touch(now time.Time) {
	p.UpdatedAt = now.UTC()
}
