package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/packstack/services/inventory/domain/events"
	"github.com/ghuser/packstack/services/inventory/domain/models"
)

func ptr[T any](v T) *T { return &v }

func TestSnapshot_PreservesItem(t *testing.T) {
	exp := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	original := &models.Item{
		ID:                 42,
		OwnerID:            uuid.MustParse("660e8400-e29b-41d4-a716-446655440000"),
		Name:               "Freeze-dried Chili",
		IsFood:             true,
		Weight:             ptr(4.5),
		Unit:               models.UnitOunce,
		Price:              ptr(11.95),
		Category:           "Dinners",
		Brand:              "Mountain House",
		FoodType:           models.FoodDinner,
		CaloriesPerServing: ptr(620.0),
		ExpirationDate:     &exp,
		Nutrition:          &models.NutritionInfo{Protein: ptr(30.0), Fat: ptr(18.0)},
		DietaryTags:        []string{"gluten-free"},
		CreatedAt:          time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
		UpdatedAt:          time.Date(2025, 1, 16, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(events.SnapshotOf(original))
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	var decoded events.ItemSnapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	got := decoded.Item()

	if got.ID != original.ID || got.OwnerID != original.OwnerID || got.Name != original.Name {
		t.Fatalf("identity mismatch: %+v", got)
	}
	if got.Unit != models.UnitOunce || *got.Weight != 4.5 || *got.Price != 11.95 {
		t.Fatalf("weight/price mismatch: %+v", got)
	}
	if got.FoodType != models.FoodDinner || !got.ExpirationDate.Equal(exp) {
		t.Fatalf("food fields mismatch: %+v", got)
	}
	if got.Nutrition == nil || *got.Nutrition.Protein != 30 || got.Nutrition.Carbs != nil || *got.Nutrition.Fat != 18 {
		t.Fatalf("nutrition mismatch: %+v", got.Nutrition)
	}
	if !got.CreatedAt.Equal(original.CreatedAt) || !got.UpdatedAt.Equal(original.UpdatedAt) {
		t.Fatalf("timestamps mismatch: %+v", got)
	}
}

func TestSnapshot_GearHasNoNutrition(t *testing.T) {
	item := events.SnapshotOf(&models.Item{ID: 1, Name: "Tent", Unit: models.UnitGram}).Item()
	if item.Nutrition != nil {
		t.Fatalf("expected nil nutrition, got %+v", item.Nutrition)
	}
}

func TestItemCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Item:       events.ItemSnapshot{ID: 7, OwnerID: uuid.New(), Name: "Headlamp", Unit: "g"},
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "item", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	item, _ := raw["item"].(map[string]any)
	for _, field := range []string{"id", "owner_id", "name", "is_food", "unit"} {
		if _, ok := item[field]; !ok {
			t.Errorf("expected item field %q not found in: %s", field, data)
		}
	}
}

func TestTopics(t *testing.T) {
	if events.TopicItemCreated != "item.created" {
		t.Errorf("expected %q, got %q", "item.created", events.TopicItemCreated)
	}
	if events.TopicItemDeleted != "item.deleted" {
		t.Errorf("expected %q, got %q", "item.deleted", events.TopicItemDeleted)
	}
}
