package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/packstack/pkg/logger"
	invdomain "github.com/ghuser/packstack/services/inventory/domain"
	invmodels "github.com/ghuser/packstack/services/inventory/domain/models"
	engine "github.com/ghuser/packstack/services/inventory/domain/services"
	tripdomain "github.com/ghuser/packstack/services/trip/domain"
	"github.com/ghuser/packstack/services/trip/domain/models"
	"github.com/ghuser/packstack/services/trip/domain/repositories"
)

// ItemSource yields an immutable snapshot of an owner's inventory.
type ItemSource interface {
	Snapshot(ctx context.Context, ownerID uuid.UUID) ([]*invmodels.Item, error)
}

// CreatePlanInput carries the raw dates of a new plan.
type CreatePlanInput struct {
	Name      string
	StartDate string
	EndDate   string
}

// MealChange identifies one item in one slot of one day.
type MealChange struct {
	Date   string
	Slot   string
	ItemID int64
}

// DayNutrition is the nutrition rollup of one plan day.
type DayNutrition struct {
	Date      time.Time
	Nutrition engine.Nutrition
}

// SlotFood is a candidate food for a meal slot with its expiration state on the trip's first day.
type SlotFood struct {
	Item       *invmodels.Item
	Expiration engine.Expiration
}

// PlanService manages draft meal plans and computes their rollups against the live inventory.
type PlanService struct {
	store repositories.PlanStore
	items ItemSource
	log   logger.Logger
	now   func() time.Time
}

func NewPlanService(store repositories.PlanStore, items ItemSource, log logger.Logger) *PlanService {
	return &PlanService{store: store, items: items, log: log, now: time.Now}
}

// Create seeds and stores an empty plan.
func (s *PlanService) Create(ctx context.Context, ownerID uuid.UUID, in CreatePlanInput) (*models.Plan, error) {
	start, err := invmodels.ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := invmodels.ParseDate(in.EndDate)
	if err != nil {
		return nil, err
	}

	plan, err := models.NewPlan(ownerID, in.Name, start, end, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("create meal plan: %w", err)
	}

	s.log.InfoContext(ctx, "meal plan created", "plan_id", plan.ID, "days", len(plan.Meals.Days))
	return plan, nil
}

func (s *PlanService) Get(ctx context.Context, ownerID, planID uuid.UUID) (*models.Plan, error) {
	return s.store.Get(ctx, ownerID, planID)
}

func (s *PlanService) Delete(ctx context.Context, ownerID, planID uuid.UUID) error {
	if err := s.store.Delete(ctx, ownerID, planID); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "meal plan discarded", "plan_id", planID)
	return nil
}

// AddMeal places an owned food item into a slot. Adding an item already in the slot is a no-op.
func (s *PlanService) AddMeal(ctx context.Context, ownerID, planID uuid.UUID, change MealChange) (*models.Plan, error) {
	date, slot, err := parseChange(change)
	if err != nil {
		return nil, err
	}

	items, err := s.items.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	item, ok := engine.LookupFrom(items)(change.ItemID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", invdomain.ErrItemNotFound, change.ItemID)
	}
	if !engine.IsFood(item) {
		return nil, fmt.Errorf("%w: %q", tripdomain.ErrNotFood, item.Name)
	}

	return s.store.Update(ctx, ownerID, planID, func(p *models.Plan) error {
		if err := p.Meals.AddItem(date, slot, change.ItemID); err != nil {
			return err
		}
		p.Touch(s.now())
		return nil
	})
}

// RemoveMeal drops an item from a slot. The item need not exist in the inventory any more.
func (s *PlanService) RemoveMeal(ctx context.Context, ownerID, planID uuid.UUID, change MealChange) (*models.Plan, error) {
	date, slot, err := parseChange(change)
	if err != nil {
		return nil, err
	}

	return s.store.Update(ctx, ownerID, planID, func(p *models.Plan) error {
		if err := p.Meals.RemoveItem(date, slot, change.ItemID); err != nil {
			return err
		}
		p.Touch(s.now())
		return nil
	})
}

// Nutrition returns per-day nutrition for the whole plan, or for the single day named by date.
// Items deleted from the inventory since they were planned are skipped.
func (s *PlanService) Nutrition(ctx context.Context, ownerID, planID uuid.UUID, date string) ([]DayNutrition, error) {
	plan, err := s.store.Get(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}
	lookup, err := s.lookup(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if date != "" {
		d, err := invmodels.ParseDate(date)
		if err != nil {
			return nil, err
		}
		if _, ok := plan.Meals.Day(d); !ok {
			return nil, fmt.Errorf("%w: %s", invdomain.ErrDayNotInPlan, invmodels.FormatDate(d))
		}
		return []DayNutrition{{Date: d, Nutrition: engine.DayNutrition(plan.Meals, d, lookup)}}, nil
	}

	out := make([]DayNutrition, 0, len(plan.Meals.Days))
	for _, day := range plan.Meals.Days {
		out = append(out, DayNutrition{Date: day.Date, Nutrition: engine.DayNutrition(plan.Meals, day.Date, lookup)})
	}
	return out, nil
}

// FoodsForSlot lists the owner's foods that fit the slot, sorted by name.
func (s *PlanService) FoodsForSlot(ctx context.Context, ownerID, planID uuid.UUID, slotName string) ([]SlotFood, error) {
	slot, err := invmodels.ParseMealSlot(slotName)
	if err != nil {
		return nil, err
	}
	plan, err := s.store.Get(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}
	items, err := s.items.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	foods, err := engine.SortItems(engine.FoodsForSlot(items, slot), engine.SortName)
	if err != nil {
		return nil, err
	}
	out := make([]SlotFood, 0, len(foods))
	for _, item := range foods {
		out = append(out, SlotFood{Item: item, Expiration: engine.ExpirationState(item, plan.Meals.StartDate)})
	}
	return out, nil
}

// Summary totals the selected gear and every food referenced by the plan.
func (s *PlanService) Summary(ctx context.Context, ownerID, planID uuid.UUID, gearIDs []int64) (engine.TripSummary, error) {
	plan, err := s.store.Get(ctx, ownerID, planID)
	if err != nil {
		return engine.TripSummary{}, err
	}
	lookup, err := s.lookup(ctx, ownerID)
	if err != nil {
		return engine.TripSummary{}, err
	}
	return engine.SummarizeTrip(slices.Clone(gearIDs), plan.Meals, lookup), nil
}

func (s *PlanService) lookup(ctx context.Context, ownerID uuid.UUID) (engine.ItemLookup, error) {
	items, err := s.items.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return engine.LookupFrom(items), nil
}

func parseChange(c MealChange) (time.Time, invmodels.MealSlot, error) {
	date, err := invmodels.ParseDate(c.Date)
	if err != nil {
		return time.Time{}, "", err
	}
	slot, err := invmodels.ParseMealSlot(c.Slot)
	if err != nil {
		return time.Time{}, "", err
	}
	return date, slot, nil
}
