package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/packstack/services/inventory/domain"
)

// FoodType classifies a food item. The empty value means unclassified.
type FoodType string

const (
	FoodBreakfast FoodType = "breakfast"
	FoodLunch     FoodType = "lunch"
	FoodDinner    FoodType = "dinner"
	FoodMeal      FoodType = "meal"
	FoodSnack     FoodType = "snack"
	FoodDrink     FoodType = "drink"
	FoodDessert   FoodType = "dessert"
	FoodOther     FoodType = "other"
)

// FoodTypes lists every known food type in display order.
var FoodTypes = []FoodType{
	FoodBreakfast, FoodLunch, FoodDinner, FoodMeal, FoodSnack, FoodDrink, FoodDessert, FoodOther,
}

// ParseFoodType validates s. An empty string is accepted and stays unclassified.
func ParseFoodType(s string) (FoodType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	for _, ft := range FoodTypes {
		if FoodType(s) == ft {
			return ft, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidFoodType, s)
}

// NutritionInfo holds macro-nutrients in grams per serving. Any field may be absent.
type NutritionInfo struct {
	Protein *float64
	Carbs   *float64
	Fat     *float64
}

// Item is the core aggregate for this bounded context: one piece of gear or one food.
// Food-only fields are ignored when IsFood is false.
type Item struct {
	ID      int64
	OwnerID uuid.UUID // scope: always filter by this in queries
	Name    ItemName
	IsFood  bool

	Weight *float64
	Unit   Unit
	Price  *float64

	Category   string
	Brand      string
	Notes      string
	ProductURL string
	Consumable bool
	Wishlist   bool

	FoodType           FoodType
	CaloriesPerServing *float64
	ExpirationDate     *time.Time
	Nutrition          *NutritionInfo
	DietaryTags        []string
	PreparationMinutes *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem constructs an Item with the default unit and current timestamps.
// The ID is assigned by the store on insert.
func NewItem(ownerID uuid.UUID, name ItemName, isFood bool) (*Item, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("owner id must be set")
	}
	now := time.Now().UTC()
	return &Item{
		OwnerID:   ownerID,
		Name:      name,
		IsFood:    isFood,
		Unit:      DefaultUnit,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ClearFoodFields drops food-only data, used when an item is saved as gear.
func (i *Item) ClearFoodFields() {
	i.FoodType = ""
	i.CaloriesPerServing = nil
	i.ExpirationDate = nil
	i.Nutrition = nil
	i.DietaryTags = nil
	i.PreparationMinutes = nil
}

// Touch bumps UpdatedAt.
func (i *Item) Touch() {
	i.UpdatedAt = time.Now().UTC()
}
