package services

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/packstack/pkg/config"
	"github.com/ghuser/packstack/pkg/logger"
	invdomain "github.com/ghuser/packstack/services/inventory/domain"
	invmodels "github.com/ghuser/packstack/services/inventory/domain/models"
	engine "github.com/ghuser/packstack/services/inventory/domain/services"
	tripdomain "github.com/ghuser/packstack/services/trip/domain"
	"github.com/ghuser/packstack/services/trip/domain/models"
)

type memStore struct {
	mu    sync.Mutex
	plans map[uuid.UUID]*models.Plan
}

func newMemStore() *memStore { return &memStore{plans: make(map[uuid.UUID]*models.Plan)} }

func (m *memStore) Save(_ context.Context, p *models.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans[p.ID] = p
	return nil
}

func (m *memStore) Get(_ context.Context, ownerID, id uuid.UUID) (*models.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.plans[id]
	if !ok || p.OwnerID != ownerID {
		return nil, tripdomain.ErrMealPlanNotFound
	}
	return p, nil
}

func (m *memStore) Update(ctx context.Context, ownerID, id uuid.UUID, fn func(*models.Plan) error) (*models.Plan, error) {
	p, err := m.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := fn(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *memStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := m.Get(ctx, ownerID, id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.plans, id)
	return nil
}

type staticItems []*invmodels.Item

func (s staticItems) Snapshot(context.Context, uuid.UUID) ([]*invmodels.Item, error) {
	return s, nil
}

func ptr[T any](v T) *T { return &v }

func food(id int64, name string, ft invmodels.FoodType, cal, grams float64) *invmodels.Item {
	return &invmodels.Item{
		ID: id, Name: invmodels.ItemName(name), IsFood: true, FoodType: ft,
		CaloriesPerServing: ptr(cal), Weight: ptr(grams), Unit: invmodels.UnitGram,
		Nutrition: &invmodels.NutritionInfo{Protein: ptr(10.0)},
	}
}

func newTestService(items staticItems) *PlanService {
	svc := NewPlanService(newMemStore(), items, logger.New(&config.Config{LogLevel: "error"}))
	svc.now = func() time.Time { return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

var inventory = staticItems{
	food(1, "Oatmeal", invmodels.FoodBreakfast, 300, 100),
	food(2, "Pad Thai", invmodels.FoodMeal, 650, 150),
	food(3, "Chili Mac", invmodels.FoodDinner, 600, 140),
	{ID: 4, Name: "Stove", Weight: ptr(3.0), Unit: invmodels.UnitOunce, Price: ptr(50.0)},
	{ID: 5, Name: "Tent", Weight: ptr(1.0), Unit: invmodels.UnitKilogram, Price: ptr(300.0)},
}

func TestPlanService_CreateAndMeals(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	svc := newTestService(inventory)

	plan, err := svc.Create(ctx, owner, CreatePlanInput{Name: "Lost Coast", StartDate: "2025-09-10", EndDate: "2025-09-12"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(plan.Meals.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(plan.Meals.Days))
	}

	add := func(date, slot string, id int64) error {
		_, err := svc.AddMeal(ctx, owner, plan.ID, MealChange{Date: date, Slot: slot, ItemID: id})
		return err
	}

	if err := add("2025-09-10", "breakfast", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := add("2025-09-10", "Breakfast", 1); err != nil {
		t.Fatalf("duplicate add should be a no-op: %v", err)
	}
	if err := add("2025-09-10", "dinner", 3); err != nil {
		t.Fatalf("add: %v", err)
	}

	tests := []struct {
		name    string
		date    string
		slot    string
		id      int64
		wantErr error
	}{
		{"gear item", "2025-09-10", "lunch", 4, tripdomain.ErrNotFood},
		{"unknown item", "2025-09-10", "lunch", 99, invdomain.ErrItemNotFound},
		{"day outside trip", "2025-09-20", "lunch", 1, invdomain.ErrDayNotInPlan},
		{"bad slot", "2025-09-10", "brunch", 1, invdomain.ErrInvalidMealSlot},
		{"bad date", "10/09/2025", "lunch", 1, invdomain.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := add(tt.date, tt.slot, tt.id); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	got, err := svc.Get(ctx, owner, plan.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	d, _ := got.Meals.Day(time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC))
	if !slices.Equal(d.Meals[invmodels.SlotBreakfast], []int64{1}) {
		t.Fatalf("breakfast = %v", d.Meals[invmodels.SlotBreakfast])
	}

	if _, err := svc.RemoveMeal(ctx, owner, plan.ID, MealChange{Date: "2025-09-10", Slot: "breakfast", ItemID: 1}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got, _ = svc.Get(ctx, owner, plan.ID)
	d, _ = got.Meals.Day(time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC))
	if len(d.Meals[invmodels.SlotBreakfast]) != 0 {
		t.Fatalf("breakfast not emptied: %v", d.Meals[invmodels.SlotBreakfast])
	}

	if _, err := svc.Get(ctx, uuid.New(), plan.ID); !errors.Is(err, tripdomain.ErrMealPlanNotFound) {
		t.Fatalf("foreign owner: expected ErrMealPlanNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, owner, plan.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, owner, plan.ID); !errors.Is(err, tripdomain.ErrMealPlanNotFound) {
		t.Fatalf("after delete: expected ErrMealPlanNotFound, got %v", err)
	}
}

func TestPlanService_CreateInvalid(t *testing.T) {
	svc := newTestService(inventory)
	tests := []struct {
		name    string
		in      CreatePlanInput
		wantErr error
	}{
		{"reversed", CreatePlanInput{StartDate: "2025-09-12", EndDate: "2025-09-10"}, invdomain.ErrInvalidDateRange},
		{"missing end", CreatePlanInput{StartDate: "2025-09-12"}, invdomain.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), uuid.New(), tt.in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPlanService_Rollups(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	svc := newTestService(inventory)

	plan, _ := svc.Create(ctx, owner, CreatePlanInput{StartDate: "2025-09-10", EndDate: "2025-09-11"})
	for _, c := range []MealChange{
		{Date: "2025-09-10", Slot: "breakfast", ItemID: 1},
		{Date: "2025-09-10", Slot: "dinner", ItemID: 2},
		{Date: "2025-09-11", Slot: "dinner", ItemID: 2},
	} {
		if _, err := svc.AddMeal(ctx, owner, plan.ID, c); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	t.Run("whole plan nutrition", func(t *testing.T) {
		days, err := svc.Nutrition(ctx, owner, plan.ID, "")
		if err != nil {
			t.Fatalf("nutrition: %v", err)
		}
		if len(days) != 2 || days[0].Nutrition.Calories != 950 || days[1].Nutrition.Calories != 650 {
			t.Fatalf("unexpected nutrition: %+v", days)
		}
		if days[0].Nutrition.Protein != 20 {
			t.Fatalf("protein = %v", days[0].Nutrition.Protein)
		}
	})

	t.Run("single day", func(t *testing.T) {
		days, err := svc.Nutrition(ctx, owner, plan.ID, "2025-09-11")
		if err != nil || len(days) != 1 || days[0].Nutrition.Calories != 650 {
			t.Fatalf("unexpected: %+v %v", days, err)
		}
		if _, err := svc.Nutrition(ctx, owner, plan.ID, "2025-10-01"); !errors.Is(err, invdomain.ErrDayNotInPlan) {
			t.Fatalf("expected ErrDayNotInPlan, got %v", err)
		}
	})

	t.Run("deleted item is skipped", func(t *testing.T) {
		shrunk := newTestService(inventory[1:])
		shrunk.store = svc.store
		days, err := shrunk.Nutrition(ctx, owner, plan.ID, "2025-09-10")
		if err != nil {
			t.Fatalf("nutrition: %v", err)
		}
		if days[0].Nutrition.Calories != 650 {
			t.Fatalf("expected only pad thai, got %+v", days[0].Nutrition)
		}
	})

	t.Run("summary", func(t *testing.T) {
		sum, err := svc.Summary(ctx, owner, plan.ID, []int64{4, 5, 5})
		if err != nil {
			t.Fatalf("summary: %v", err)
		}
		want := engine.TripSummary{
			GearCount:    2,
			GearWeight:   3*28.3495 + 1000,
			GearCost:     350,
			FoodCount:    2,
			FoodWeight:   250,
			FoodCalories: 950,
		}
		want.TotalWeight = want.GearWeight + want.FoodWeight
		want.TotalCost = want.GearCost + want.FoodCost
		if sum.GearCount != want.GearCount || sum.FoodCount != want.FoodCount ||
			sum.GearCost != want.GearCost || sum.FoodCalories != want.FoodCalories || sum.FoodWeight != want.FoodWeight {
			t.Fatalf("summary = %+v, want %+v", sum, want)
		}
		if d := sum.TotalWeight - want.TotalWeight; d > 1e-9 || d < -1e-9 {
			t.Fatalf("TotalWeight = %v, want %v", sum.TotalWeight, want.TotalWeight)
		}
	})

	t.Run("foods for slot", func(t *testing.T) {
		foods, err := svc.FoodsForSlot(ctx, owner, plan.ID, "dinner")
		if err != nil {
			t.Fatalf("foods: %v", err)
		}
		if len(foods) != 2 || foods[0].Item.Name != "Chili Mac" || foods[1].Item.Name != "Pad Thai" {
			t.Fatalf("unexpected foods: %+v", foods)
		}
		if foods[0].Expiration != engine.ExpirationNone {
			t.Fatalf("expected none, got %s", foods[0].Expiration)
		}
		if _, err := svc.FoodsForSlot(ctx, owner, plan.ID, "elevenses"); !errors.Is(err, invdomain.ErrInvalidMealSlot) {
			t.Fatalf("expected ErrInvalidMealSlot, got %v", err)
		}
	})
}
