package handlers

import (
	"time"

	invmodels "github.com/ghuser/packstack/services/inventory/domain/models"
	engine "github.com/ghuser/packstack/services/inventory/domain/services"
	"github.com/ghuser/packstack/services/trip/application/services"
	"github.com/ghuser/packstack/services/trip/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"meal plan not found"`
} // @name TripErrorResponse

// CreatePlanRequest is the request body for POST /trip/plan.
type CreatePlanRequest struct {
	Name      string `json:"name"       validate:"max=255"          example:"Lost Coast"`
	StartDate string `json:"start_date" validate:"required,isodate" example:"2025-09-10"`
	EndDate   string `json:"end_date"   validate:"required,isodate" example:"2025-09-12"`
} // @name CreatePlanRequest

// MealRequest is the request body for POST and DELETE /trip/plan/{id}/meals.
type MealRequest struct {
	Date   string `json:"date"    validate:"required,isodate"  example:"2025-09-10"`
	Slot   string `json:"slot"    validate:"required,mealslot" example:"dinner"`
	ItemID int64  `json:"item_id" validate:"required,gt=0"      example:"42"`
} // @name MealRequest

func (r *MealRequest) change() services.MealChange {
	return services.MealChange{Date: r.Date, Slot: r.Slot, ItemID: r.ItemID}
}

// SummaryRequest is the request body for POST /trip/plan/{id}/summary.
type SummaryRequest struct {
	GearIDs []int64 `json:"gear_ids" validate:"max=1000,dive,gt=0" example:"4,5"`
} // @name SummaryRequest

// DayResponse is one day of a plan. Meals always carries all four slots.
type DayResponse struct {
	Date  string             `json:"date"  example:"2025-09-10"`
	Meals map[string][]int64 `json:"meals"`
} // @name DayResponse

// PlanResponse is the wire shape of a meal plan.
type PlanResponse struct {
	ID        string        `json:"id"         example:"5f0c1d2e-7a43-4a57-9a83-0d5f3ef6c1a2"`
	Name      string        `json:"name"       example:"Lost Coast"`
	StartDate string        `json:"start_date" example:"2025-09-10"`
	EndDate   string        `json:"end_date"   example:"2025-09-12"`
	Days      []DayResponse `json:"days"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
} // @name PlanResponse

func newPlanResponse(p *models.Plan) PlanResponse {
	resp := PlanResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		StartDate: invmodels.FormatDate(p.Meals.StartDate),
		EndDate:   invmodels.FormatDate(p.Meals.EndDate),
		Days:      make([]DayResponse, 0, len(p.Meals.Days)),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for _, d := range p.Meals.Days {
		meals := make(map[string][]int64, len(invmodels.MealSlots))
		for _, slot := range invmodels.MealSlots {
			ids := d.Meals[slot]
			if ids == nil {
				ids = []int64{}
			}
			meals[string(slot)] = ids
		}
		resp.Days = append(resp.Days, DayResponse{Date: invmodels.FormatDate(d.Date), Meals: meals})
	}
	return resp
}

// Nutrition is a nutrition rollup.
type Nutrition struct {
	Calories float64 `json:"calories" example:"2150"`
	Protein  float64 `json:"protein"  example:"85"`
	Carbs    float64 `json:"carbs"    example:"260"`
	Fat      float64 `json:"fat"      example:"70"`
} // @name TripNutrition

func newNutrition(n engine.Nutrition) Nutrition {
	return Nutrition{Calories: n.Calories, Protein: n.Protein, Carbs: n.Carbs, Fat: n.Fat}
}

// DayNutritionResponse is the nutrition of one plan day.
type DayNutritionResponse struct {
	Date      string    `json:"date" example:"2025-09-10"`
	Nutrition Nutrition `json:"nutrition"`
} // @name DayNutritionResponse

// NutritionResponse lists per-day nutrition and the trip total.
type NutritionResponse struct {
	Days  []DayNutritionResponse `json:"days"`
	Total Nutrition              `json:"total"`
} // @name NutritionResponse

func newNutritionResponse(days []services.DayNutrition) NutritionResponse {
	var total engine.Nutrition
	resp := NutritionResponse{Days: make([]DayNutritionResponse, 0, len(days))}
	for _, d := range days {
		total = total.Add(d.Nutrition)
		resp.Days = append(resp.Days, DayNutritionResponse{Date: invmodels.FormatDate(d.Date), Nutrition: newNutrition(d.Nutrition)})
	}
	resp.Total = newNutrition(total)
	return resp
}

// FoodOption is a food the caller can put into a slot.
type FoodOption struct {
	ID                 int64    `json:"id"                             example:"42"`
	Name               string   `json:"name"                           example:"Chili Mac"`
	FoodType           string   `json:"food_type"                      example:"dinner"`
	CaloriesPerServing *float64 `json:"calories_per_serving,omitempty" example:"600"`
	ExpirationDate     string   `json:"expiration_date,omitempty"      example:"2026-01-31"`
	ExpirationState    string   `json:"expiration_state"               example:"fresh"`
} // @name FoodOption

func newFoodOptions(foods []services.SlotFood) []FoodOption {
	out := make([]FoodOption, 0, len(foods))
	for _, f := range foods {
		opt := FoodOption{
			ID:                 f.Item.ID,
			Name:               f.Item.Name.String(),
			FoodType:           engine.FoodTypeKey(f.Item),
			CaloriesPerServing: f.Item.CaloriesPerServing,
			ExpirationState:    string(f.Expiration),
		}
		if f.Item.ExpirationDate != nil {
			opt.ExpirationDate = invmodels.FormatDate(*f.Item.ExpirationDate)
		}
		out = append(out, opt)
	}
	return out
}

// SummaryResponse totals gear and planned food. Weights are grams.
type SummaryResponse struct {
	GearCount        int     `json:"gear_count"          example:"12"`
	GearWeightGrams  float64 `json:"gear_weight_grams"   example:"7300"`
	GearCost         float64 `json:"gear_cost"           example:"1450"`
	FoodCount        int     `json:"food_count"          example:"9"`
	FoodWeightGrams  float64 `json:"food_weight_grams"   example:"2100"`
	FoodCost         float64 `json:"food_cost"           example:"96.5"`
	FoodCalories     float64 `json:"food_calories"       example:"7800"`
	TotalWeightGrams float64 `json:"total_weight_grams"  example:"9400"`
	TotalCost        float64 `json:"total_cost"          example:"1546.5"`
} // @name SummaryResponse

func newSummaryResponse(s engine.TripSummary) SummaryResponse {
	return SummaryResponse{
		GearCount:        s.GearCount,
		GearWeightGrams:  s.GearWeight,
		GearCost:         s.GearCost,
		FoodCount:        s.FoodCount,
		FoodWeightGrams:  s.FoodWeight,
		FoodCost:         s.FoodCost,
		FoodCalories:     s.FoodCalories,
		TotalWeightGrams: s.TotalWeight,
		TotalCost:        s.TotalCost,
	}
}
