package services

import (
	"time"

	"github.com/ghuser/packstack/services/inventory/domain/models"
)

// Nutrition is a macro-nutrient rollup. Calories are kcal, the rest grams.
type Nutrition struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Add returns the field-wise sum of n and o.
func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
	}
}

// ItemNutrition is one serving of item. Gear and missing fields are zero.
func ItemNutrition(item *models.Item) Nutrition {
	if item == nil || !item.IsFood {
		return Nutrition{}
	}
	n := Nutrition{Calories: deref(item.CaloriesPerServing)}
	if item.Nutrition != nil {
		n.Protein = deref(item.Nutrition.Protein)
		n.Carbs = deref(item.Nutrition.Carbs)
		n.Fat = deref(item.Nutrition.Fat)
	}
	return n
}

// SumWeight totals item weights in grams.
func SumWeight(items []*models.Item) float64 {
	var total float64
	for _, item := range items {
		total += weightGrams(item)
	}
	return total
}

// SumPrice totals item prices.
func SumPrice(items []*models.Item) float64 {
	var total float64
	for _, item := range items {
		total += price(item)
	}
	return total
}

// NutritionTotals sums one serving of every food item. Gear contributes zero.
func NutritionTotals(items []*models.Item) Nutrition {
	var total Nutrition
	for _, item := range items {
		total = total.Add(ItemNutrition(item))
	}
	return total
}

// ItemLookup resolves an item id against a snapshot.
type ItemLookup func(id int64) (*models.Item, bool)

// LookupFrom indexes items by id.
func LookupFrom(items []*models.Item) ItemLookup {
	byID := make(map[int64]*models.Item, len(items))
	for _, item := range items {
		if item != nil {
			byID[item.ID] = item
		}
	}
	return func(id int64) (*models.Item, bool) {
		item, ok := byID[id]
		return item, ok
	}
}

// Resolve maps ids through lookup, dropping ids that no longer resolve.
func Resolve(ids []int64, lookup ItemLookup) []*models.Item {
	out := make([]*models.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := lookup(id); ok {
			out = append(out, item)
		}
	}
	return out
}

// DayNutrition totals every slot of the plan's day matching date.
// Ids that fail to resolve are skipped; a date outside the plan totals zero.
func DayNutrition(plan *models.MealPlan, date time.Time, lookup ItemLookup) Nutrition {
	if plan == nil {
		return Nutrition{}
	}
	for _, day := range plan.Days {
		if CompareDates(day.Date, date) == Same {
			return NutritionTotals(Resolve(day.ItemIDs(), lookup))
		}
	}
	return Nutrition{}
}

// TripSummary is the weight, cost and calorie rollup of a trip's gear and planned food.
type TripSummary struct {
	GearCount    int
	GearWeight   float64
	GearCost     float64
	FoodCount    int
	FoodWeight   float64
	FoodCost     float64
	FoodCalories float64
	TotalWeight  float64
	TotalCost    float64
}

// SummarizeTrip rolls up the selected gear and every distinct food item referenced by the plan.
// Each item counts once however many slots reference it. Food ids passed as gear are ignored.
func SummarizeTrip(gearIDs []int64, plan *models.MealPlan, lookup ItemLookup) TripSummary {
	gear := Filter(Resolve(unique(gearIDs), lookup), IsGear)
	var food []*models.Item
	if plan != nil {
		food = Resolve(plan.ItemIDs(), lookup)
	}

	s := TripSummary{
		GearCount:    len(gear),
		GearWeight:   SumWeight(gear),
		GearCost:     SumPrice(gear),
		FoodCount:    len(food),
		FoodWeight:   SumWeight(food),
		FoodCost:     SumPrice(food),
		FoodCalories: NutritionTotals(food).Calories,
	}
	s.TotalWeight = s.GearWeight + s.FoodWeight
	s.TotalCost = s.GearCost + s.FoodCost
	return s
}

func unique(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
