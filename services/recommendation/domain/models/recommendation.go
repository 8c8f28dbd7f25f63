package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghuser/packstack/services/recommendation/domain"
)

// TripRequest describes the trip a recommendation is for.
type TripRequest struct {
	TripType        string `json:"trip_type"`
	Duration        string `json:"duration"`
	Season          string `json:"season"`
	Location        string `json:"location,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	Budget          string `json:"budget,omitempty"`
}

// Importance ranks a recommended item.
type Importance string

const (
	ImportanceEssential   Importance = "essential"
	ImportanceRecommended Importance = "recommended"
	ImportanceOptional    Importance = "optional"
)

// Item is one recommended piece of gear. Weight is grams.
type Item struct {
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	EstimatedPrice float64    `json:"estimated_price"`
	Weight         float64    `json:"weight"`
	Importance     Importance `json:"importance"`
	Reason         string     `json:"reason"`
}

// Category groups recommended items.
type Category struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// Recommendation is the validated model output.
type Recommendation struct {
	Categories []Category `json:"categories"`
}

// ItemCount is the number of items across all categories.
func (r *Recommendation) ItemCount() int {
	n := 0
	for _, c := range r.Categories {
		n += len(c.Items)
	}
	return n
}

// ParseRecommendation extracts and validates the JSON object in a model reply.
// Markdown code fences and surrounding prose are tolerated. Importance is
// lower-cased and defaults to recommended; items without a name are dropped,
// as are categories left empty.
func ParseRecommendation(reply string) (*Recommendation, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON object in reply", domain.ErrInvalidRecommendation)
	}

	var raw Recommendation
	if err := json.Unmarshal([]byte(reply[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidRecommendation, err)
	}

	out := &Recommendation{Categories: make([]Category, 0, len(raw.Categories))}
	for _, c := range raw.Categories {
		name := strings.TrimSpace(c.Category)
		if name == "" {
			name = "General"
		}
		items := make([]Item, 0, len(c.Items))
		for _, item := range c.Items {
			item.Name = strings.TrimSpace(item.Name)
			if item.Name == "" {
				continue
			}
			if item.Category == "" {
				item.Category = name
			}
			item.Importance = normalizeImportance(item.Importance)
			item.EstimatedPrice = max(item.EstimatedPrice, 0)
			item.Weight = max(item.Weight, 0)
			items = append(items, item)
		}
		if len(items) > 0 {
			out.Categories = append(out.Categories, Category{Category: name, Items: items})
		}
	}
	if len(out.Categories) == 0 {
		return nil, fmt.Errorf("%w: no recommended items", domain.ErrInvalidRecommendation)
	}
	return out, nil
}

func normalizeImportance(i Importance) Importance {
	switch v := Importance(strings.ToLower(strings.TrimSpace(string(i)))); v {
	case ImportanceEssential, ImportanceRecommended, ImportanceOptional:
		return v
	}
	return ImportanceRecommended
}

// InventorySummary is the part of an owner's inventory shown to the model.
type InventorySummary struct {
	Categories       []CategorySummary `json:"categories"`
	GearCount        int               `json:"gear_count"`
	FoodCount        int               `json:"food_count"`
	TotalWeightGrams float64           `json:"total_weight_grams"`
}

// CategorySummary lists gear names in one category.
type CategorySummary struct {
	Name        string   `json:"name"`
	Items       []string `json:"items"`
	WeightGrams float64  `json:"weight_grams"`
}
