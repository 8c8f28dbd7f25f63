package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/packstack/services/inventory/domain"
	"github.com/ghuser/packstack/services/inventory/domain/models"
	"github.com/ghuser/packstack/services/inventory/infrastructure/persistence/postgres/db"
)

func ptr[T any](v T) *T { return &v }

func TestInsertParams_RowToItem(t *testing.T) {
	exp := time.Date(2026, 2, 14, 15, 4, 5, 0, time.UTC)
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	food := &models.Item{
		ID:                 9,
		OwnerID:            uuid.New(),
		Name:               "Peanut Butter",
		IsFood:             true,
		Weight:             ptr(16.0),
		Unit:               models.UnitOunce,
		FoodType:           models.FoodSnack,
		CaloriesPerServing: ptr(190.0),
		ExpirationDate:     &exp,
		Nutrition:          &models.NutritionInfo{Protein: ptr(7.0), Fat: ptr(16.0)},
		DietaryTags:        []string{"vegan", "gluten-free"},
		PreparationMinutes: ptr(0),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	p, err := insertParams(food)
	if err != nil {
		t.Fatalf("insertParams: %v", err)
	}
	if string(p.DietaryTags) != `["vegan","gluten-free"]` {
		t.Fatalf("dietary tags = %s", p.DietaryTags)
	}
	if !p.ExpirationDate.Valid || p.ExpirationDate.Time.Hour() != 0 {
		t.Fatalf("expiration date must be a calendar day, got %+v", p.ExpirationDate)
	}
	if p.Carbs.Valid {
		t.Fatal("absent carbs must be NULL")
	}

	// simulate the round trip through the table
	row := rowFromParams(food.ID, p)
	got, err := rowToItem(row)
	if err != nil {
		t.Fatalf("rowToItem: %v", err)
	}
	if got.Name != food.Name || got.Unit != models.UnitOunce || *got.Weight != 16 {
		t.Fatalf("basic fields mismatch: %+v", got)
	}
	if got.Nutrition == nil || got.Nutrition.Carbs != nil || *got.Nutrition.Fat != 16 {
		t.Fatalf("nutrition mismatch: %+v", got.Nutrition)
	}
	if len(got.DietaryTags) != 2 || got.DietaryTags[1] != "gluten-free" {
		t.Fatalf("tags mismatch: %v", got.DietaryTags)
	}
	if !got.ExpirationDate.Equal(time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expiration mismatch: %v", got.ExpirationDate)
	}
	if got.PreparationMinutes == nil || *got.PreparationMinutes != 0 {
		t.Fatalf("preparation minutes mismatch: %v", got.PreparationMinutes)
	}
}

func TestRowToItem_Unit(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		want    models.Unit
		wantErr error
	}{
		{"canonical", "kg", models.UnitKilogram, nil},
		{"upper case", "KG", models.UnitKilogram, nil},
		{"empty defaults to grams", "", models.UnitGram, nil},
		{"unknown", "stone", "", domain.ErrInvalidUnit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := rowFromParams(1, db.InsertItemParams{Name: "Tent", Unit: tt.stored})
			got, err := rowToItem(row)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("rowToItem: %v", err)
			}
			if got.Unit != tt.want {
				t.Fatalf("unit = %q, want %q", got.Unit, tt.want)
			}
		})
	}
}

func TestInsertParams_GearDropsFoodColumns(t *testing.T) {
	exp := time.Now()
	gear := &models.Item{
		OwnerID:            uuid.New(),
		Name:               "Trekking Poles",
		Unit:               models.UnitGram,
		FoodType:           models.FoodDinner,
		CaloriesPerServing: ptr(100.0),
		ExpirationDate:     &exp,
		DietaryTags:        []string{"vegan"},
	}

	p, err := insertParams(gear)
	if err != nil {
		t.Fatalf("insertParams: %v", err)
	}
	if p.FoodType != "" || p.CaloriesPerServing.Valid || p.ExpirationDate.Valid || string(p.DietaryTags) != "[]" {
		t.Fatalf("gear must not persist food columns: %+v", p)
	}

	got, err := rowToItem(rowFromParams(1, p))
	if err != nil {
		t.Fatalf("rowToItem: %v", err)
	}
	if got.Nutrition != nil || got.DietaryTags != nil || got.ExpirationDate != nil {
		t.Fatalf("expected no food fields, got %+v", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("foreign key violation is not a unique violation")
	}
	if isUniqueViolation(errors.New("boom")) {
		t.Fatal("plain error is not a unique violation")
	}
}
