package handlers

import (
	"github.com/ghuser/packstack/services/recommendation/application/services"
	"github.com/ghuser/packstack/services/recommendation/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"recommendations not configured"`
} // @name RecommendationErrorResponse

// GearRecommendationRequest is the request body for POST /recommendations/gear.
type GearRecommendationRequest struct {
	TripType        string `json:"trip_type"                  validate:"required,max=100"                                       example:"backpacking"`
	Duration        string `json:"duration"                   validate:"required,max=50"                                        example:"3 days"`
	Season          string `json:"season"                     validate:"required,max=50"                                        example:"fall"`
	Location        string `json:"location,omitempty"         validate:"max=200"                                                example:"High Sierra"`
	ExperienceLevel string `json:"experience_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert" example:"intermediate"`
	Budget          string `json:"budget,omitempty"           validate:"omitempty,oneof=budget moderate premium"                example:"moderate"`
} // @name GearRecommendationRequest

func (r *GearRecommendationRequest) trip() models.TripRequest {
	return models.TripRequest{
		TripType:        r.TripType,
		Duration:        r.Duration,
		Season:          r.Season,
		Location:        r.Location,
		ExperienceLevel: r.ExperienceLevel,
		Budget:          r.Budget,
	}
}

// RecommendedItem is one recommended piece of gear. Weight is grams, price USD.
type RecommendedItem struct {
	Name           string  `json:"name"            example:"Down quilt"`
	Description    string  `json:"description"     example:"20F rated 850 fill quilt"`
	Category       string  `json:"category"        example:"Sleep System"`
	EstimatedPrice float64 `json:"estimated_price" example:"320"`
	Weight         float64 `json:"weight"          example:"620"`
	Importance     string  `json:"importance"      example:"essential"`
	Reason         string  `json:"reason"          example:"Nights drop below freezing in fall"`
} // @name RecommendedItem

// RecommendationCategory groups recommended items.
type RecommendationCategory struct {
	Category string            `json:"category" example:"Sleep System"`
	Items    []RecommendedItem `json:"items"`
} // @name RecommendationCategory

// InventoryCategory summarizes owned gear in one category.
type InventoryCategory struct {
	Name        string   `json:"name"         example:"Shelter"`
	Items       []string `json:"items"`
	WeightGrams float64  `json:"weight_grams" example:"1500"`
} // @name InventoryCategory

// InventorySummary is the inventory the recommendation was based on.
type InventorySummary struct {
	GearCount        int                 `json:"gear_count"         example:"14"`
	FoodCount        int                 `json:"food_count"         example:"6"`
	TotalWeightGrams float64             `json:"total_weight_grams" example:"8200"`
	Categories       []InventoryCategory `json:"categories"`
} // @name InventorySummary

// GearRecommendationResponse is the response of POST /recommendations/gear.
type GearRecommendationResponse struct {
	Categories []RecommendationCategory `json:"categories"`
	ItemCount  int                      `json:"item_count" example:"9"`
	Inventory  InventorySummary         `json:"inventory"`
} // @name GearRecommendationResponse

func newGearRecommendationResponse(res *services.Result) GearRecommendationResponse {
	rec := res.Recommendation
	out := GearRecommendationResponse{
		Categories: make([]RecommendationCategory, 0, len(rec.Categories)),
		ItemCount:  rec.ItemCount(),
		Inventory: InventorySummary{
			GearCount:        res.Inventory.GearCount,
			FoodCount:        res.Inventory.FoodCount,
			TotalWeightGrams: res.Inventory.TotalWeightGrams,
			Categories:       make([]InventoryCategory, 0, len(res.Inventory.Categories)),
		},
	}
	for _, c := range rec.Categories {
		cat := RecommendationCategory{Category: c.Category, Items: make([]RecommendedItem, 0, len(c.Items))}
		for _, i := range c.Items {
			cat.Items = append(cat.Items, RecommendedItem{
				Name:           i.Name,
				Description:    i.Description,
				Category:       i.Category,
				EstimatedPrice: i.EstimatedPrice,
				Weight:         i.Weight,
				Importance:     string(i.Importance),
				Reason:         i.Reason,
			})
		}
		out.Categories = append(out.Categories, cat)
	}
	for _, c := range res.Inventory.Categories {
		out.Inventory.Categories = append(out.Inventory.Categories, InventoryCategory{
			Name:        c.Name,
			Items:       c.Items,
			WeightGrams: c.WeightGrams,
		})
	}
	return out
}
