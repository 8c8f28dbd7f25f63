// Package services builds the model prompt from an owner's inventory.
package services

import (
	"fmt"
	"strings"

	invmodels "github.com/ghuser/packstack/services/inventory/domain/models"
	engine "github.com/ghuser/packstack/services/inventory/domain/services"
	"github.com/ghuser/packstack/services/recommendation/domain/models"
)

// maxItemsPerCategory caps the names listed per category to bound prompt size.
const maxItemsPerCategory = 25

// SummarizeInventory groups owned gear by category, sorted by name within
// each category. Wishlist items are not owned and are left out.
func SummarizeInventory(items []*invmodels.Item) models.InventorySummary {
	owned := engine.Filter(items, func(i *invmodels.Item) bool { return !i.Wishlist })
	gear, food := engine.PartitionFood(owned)

	groups := engine.GroupBy(gear, engine.CategoryKey)
	summary := models.InventorySummary{
		Categories:       make([]models.CategorySummary, 0, len(groups)),
		GearCount:        len(gear),
		FoodCount:        len(food),
		TotalWeightGrams: engine.SumWeight(gear),
	}
	for _, key := range groups.Keys() {
		sorted, _ := engine.SortItems(groups[key], engine.SortName)
		names := make([]string, 0, min(len(sorted), maxItemsPerCategory))
		for _, item := range sorted[:min(len(sorted), maxItemsPerCategory)] {
			names = append(names, item.Name.String())
		}
		summary.Categories = append(summary.Categories, models.CategorySummary{
			Name:        key,
			Items:       names,
			WeightGrams: engine.SumWeight(groups[key]),
		})
	}
	return summary
}

const systemPrompt = `You are an experienced outdoor gear advisor. Recommend gear the user does not already own for the described trip.
Reply with a single JSON object and nothing else, shaped as:
{"categories": [{"category": string, "items": [{"name": string, "description": string, "category": string, "estimated_price": number (USD), "weight": number (grams), "importance": "essential" | "recommended" | "optional", "reason": string}]}]}`

// BuildPrompt returns the system and user messages for a recommendation request.
func BuildPrompt(trip models.TripRequest, inv models.InventorySummary) (system, user string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Trip type: %s\n", trip.TripType)
	fmt.Fprintf(&b, "Duration: %s\n", trip.Duration)
	fmt.Fprintf(&b, "Season: %s\n", trip.Season)
	if trip.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", trip.Location)
	}
	if trip.ExperienceLevel != "" {
		fmt.Fprintf(&b, "Experience level: %s\n", trip.ExperienceLevel)
	}
	if trip.Budget != "" {
		fmt.Fprintf(&b, "Budget: %s\n", trip.Budget)
	}

	b.WriteString("\nCurrent inventory")
	if inv.GearCount == 0 {
		b.WriteString(": none\n")
	} else {
		fmt.Fprintf(&b, " (%d gear items, %.0f g total, %d food items):\n", inv.GearCount, inv.TotalWeightGrams, inv.FoodCount)
		for _, c := range inv.Categories {
			fmt.Fprintf(&b, "- %s (%.0f g): %s\n", c.Name, c.WeightGrams, strings.Join(c.Items, ", "))
		}
	}
	b.WriteString("\nGroup recommendations by category. Do not repeat items already in the inventory.")
	return systemPrompt, b.String()
}
