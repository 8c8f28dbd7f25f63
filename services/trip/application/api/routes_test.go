package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/packstack/pkg/auth"
	"github.com/ghuser/packstack/pkg/config"
	"github.com/ghuser/packstack/pkg/logger"
	invmodels "github.com/ghuser/packstack/services/inventory/domain/models"
	"github.com/ghuser/packstack/services/trip/application/handlers"
	appsvcs "github.com/ghuser/packstack/services/trip/application/services"
	tripdomain "github.com/ghuser/packstack/services/trip/domain"
	"github.com/ghuser/packstack/services/trip/domain/models"
)

type memStore struct {
	mu    sync.Mutex
	plans map[uuid.UUID]*models.Plan
}

func (m *memStore) Save(_ context.Context, p *models.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans[p.ID] = p
	return nil
}

func (m *memStore) Get(_ context.Context, ownerID, id uuid.UUID) (*models.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.plans[id]; ok && p.OwnerID == ownerID {
		return p, nil
	}
	return nil, tripdomain.ErrMealPlanNotFound
}

func (m *memStore) Update(ctx context.Context, ownerID, id uuid.UUID, fn func(*models.Plan) error) (*models.Plan, error) {
	p, err := m.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return p, fn(p)
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

type items []*invmodels.Item

func (s items) Snapshot(context.Context, uuid.UUID) ([]*invmodels.Item, error) { return s, nil }

func ptr[T any](v T) *T { return &v }

func newTestRouter(owner uuid.UUID) http.Handler {
	inv := items{
		{ID: 1, Name: "Granola", IsFood: true, FoodType: invmodels.FoodBreakfast, CaloriesPerServing: ptr(400.0), Weight: ptr(100.0), Unit: invmodels.UnitGram},
		{ID: 2, Name: "Curry", IsFood: true, FoodType: invmodels.FoodMeal, CaloriesPerServing: ptr(700.0), Weight: ptr(150.0), Unit: invmodels.UnitGram},
		{ID: 3, Name: "Tent", Weight: ptr(1.0), Unit: invmodels.UnitKilogram, Price: ptr(250.0)},
	}
	log := logger.New(&config.Config{LogLevel: "error"})
	svcs := &appsvcs.Services{
		Plan: appsvcs.NewPlanService(&memStore{plans: make(map[uuid.UUID]*models.Plan)}, inv, log),
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithOwnerID(req.Context(), owner)))
		})
	})
	PlanRoutes(r, svcs)
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func TestPlanRoutes(t *testing.T) {
	h := newTestRouter(uuid.New())

	w := do(t, h, http.MethodPost, "/trip/plan", map[string]string{"name": "Enchantments", "start_date": "2025-09-10", "end_date": "2025-09-11"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	plan := decode[handlers.PlanResponse](t, w)
	if len(plan.Days) != 2 || len(plan.Days[0].Meals) != 4 {
		t.Fatalf("unexpected plan shape: %+v", plan)
	}
	base := "/trip/plan/" + plan.ID
	if loc := w.Header().Get("Location"); loc != "/api"+base {
		t.Errorf("Location = %q, want /api%s", loc, base)
	}

	for _, m := range []handlers.MealRequest{
		{Date: "2025-09-10", Slot: "breakfast", ItemID: 1},
		{Date: "2025-09-10", Slot: "dinner", ItemID: 2},
	} {
		if w := do(t, h, http.MethodPost, base+"/meals", m); w.Code != http.StatusOK {
			t.Fatalf("add meal: expected 200, got %d: %s", w.Code, w.Body.String())
		}
	}

	t.Run("gear cannot be planned", func(t *testing.T) {
		w := do(t, h, http.MethodPost, base+"/meals", handlers.MealRequest{Date: "2025-09-10", Slot: "lunch", ItemID: 3})
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("nutrition", func(t *testing.T) {
		resp := decode[handlers.NutritionResponse](t, do(t, h, http.MethodGet, base+"/nutrition", nil))
		if len(resp.Days) != 2 || resp.Days[0].Nutrition.Calories != 1100 || resp.Days[1].Nutrition.Calories != 0 {
			t.Fatalf("unexpected nutrition: %+v", resp)
		}
		if resp.Total.Calories != 1100 {
			t.Fatalf("total = %v", resp.Total.Calories)
		}
	})

	t.Run("foods for slot", func(t *testing.T) {
		foods := decode[[]handlers.FoodOption](t, do(t, h, http.MethodGet, base+"/foods?slot=breakfast", nil))
		if len(foods) != 2 || foods[0].Name != "Curry" || foods[1].Name != "Granola" {
			t.Fatalf("unexpected foods: %+v", foods)
		}
	})

	t.Run("summary", func(t *testing.T) {
		resp := decode[handlers.SummaryResponse](t, do(t, h, http.MethodPost, base+"/summary", handlers.SummaryRequest{GearIDs: []int64{3}}))
		if resp.GearWeightGrams != 1000 || resp.FoodWeightGrams != 250 || resp.TotalWeightGrams != 1250 || resp.TotalCost != 250 {
			t.Fatalf("unexpected summary: %+v", resp)
		}
	})

	t.Run("remove meal", func(t *testing.T) {
		w := do(t, h, http.MethodDelete, base+"/meals", handlers.MealRequest{Date: "2025-09-10", Slot: "dinner", ItemID: 2})
		got := decode[handlers.PlanResponse](t, w)
		if len(got.Days[0].Meals["dinner"]) != 0 {
			t.Fatalf("dinner not emptied: %v", got.Days[0].Meals)
		}
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name   string
			method string
			path   string
			body   any
			want   int
		}{
			{"bad id", http.MethodGet, "/trip/plan/not-a-uuid", nil, http.StatusBadRequest},
			{"unknown plan", http.MethodGet, "/trip/plan/" + uuid.NewString(), nil, http.StatusNotFound},
			{"reversed dates", http.MethodPost, "/trip/plan", map[string]string{"start_date": "2025-09-11", "end_date": "2025-09-10"}, http.StatusUnprocessableEntity},
			{"missing dates", http.MethodPost, "/trip/plan", map[string]string{}, http.StatusUnprocessableEntity},
			{"bad slot", http.MethodGet, base + "/foods?slot=brunch", nil, http.StatusUnprocessableEntity},
			{"day outside plan", http.MethodGet, base + "/nutrition?date=2025-12-01", nil, http.StatusUnprocessableEntity},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if w := do(t, h, tt.method, tt.path, tt.body); w.Code != tt.want {
					t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
				}
			})
		}
	})

	t.Run("delete", func(t *testing.T) {
		if w := do(t, h, http.MethodDelete, base, nil); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w := do(t, h, http.MethodGet, base, nil); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
