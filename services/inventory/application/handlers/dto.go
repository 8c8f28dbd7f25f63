package handlers

import (
	"time"

	"github.com/ghuser/packstack/services/inventory/application/services"
	"github.com/ghuser/packstack/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/packstack/services/inventory/domain/services"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// CategoryName is the inner object of a category reference.
type CategoryName struct {
	Name string `json:"name" validate:"max=100" example:"Shelter"`
} // @name CategoryName

// CategoryRef matches the client's nested {"category": {"name": ...}} shape.
type CategoryRef struct {
	Category CategoryName `json:"category"`
} // @name CategoryRef

// BrandRef is the brand of an item.
type BrandRef struct {
	Name string `json:"name" validate:"max=100" example:"Big Agnes"`
} // @name BrandRef

// NutritionInfo holds per-serving macronutrients in grams.
type NutritionInfo struct {
	Protein *float64 `json:"protein,omitempty" validate:"omitempty,gte=0" example:"12"`
	Carbs   *float64 `json:"carbs,omitempty"   validate:"omitempty,gte=0" example:"40"`
	Fat     *float64 `json:"fat,omitempty"     validate:"omitempty,gte=0" example:"9"`
} // @name NutritionInfo

// ItemRequest is the request body for POST /item and PUT /item/{id}.
// Unit, food type and expiration date are parsed by the service and rejected with 422.
type ItemRequest struct {
	Name                   string         `json:"name"                               validate:"required,notblank,max=255" example:"Copper Spur UL2"`
	IsFood                 bool           `json:"is_food"                                                        example:"false"`
	Weight                 *float64       `json:"weight,omitempty"                   validate:"omitempty,gte=0"  example:"1.36"`
	Unit                   string         `json:"unit,omitempty"                                                 example:"kg"`
	Price                  *float64       `json:"price,omitempty"                    validate:"omitempty,gte=0"  example:"449.95"`
	Category               *CategoryRef   `json:"category,omitempty"`
	Brand                  *BrandRef      `json:"brand,omitempty"`
	Notes                  string         `json:"notes,omitempty"                    validate:"max=2000"`
	ProductURL             string         `json:"product_url,omitempty"              validate:"omitempty,url"`
	Consumable             bool           `json:"consumable,omitempty"`
	Wishlist               bool           `json:"wishlist,omitempty"`
	FoodType               string         `json:"food_type,omitempty"                                            example:"dinner"`
	CaloriesPerServing     *float64       `json:"calories_per_serving,omitempty"     validate:"omitempty,gte=0"  example:"550"`
	ExpirationDate         string         `json:"expiration_date,omitempty"                                      example:"2026-03-01"`
	NutritionInfo          *NutritionInfo `json:"nutrition_info,omitempty"`
	DietaryTags            []string       `json:"dietary_tags,omitempty"             validate:"omitempty,max=20,dive,required,max=50"`
	PreparationTimeMinutes *int           `json:"preparation_time_minutes,omitempty" validate:"omitempty,gte=0"  example:"10"`
} // @name ItemRequest

// Attributes converts the wire shape into service attributes.
func (r *ItemRequest) Attributes() services.ItemAttributes {
	attrs := services.ItemAttributes{
		Name:               r.Name,
		IsFood:             r.IsFood,
		Weight:             r.Weight,
		Unit:               r.Unit,
		Price:              r.Price,
		Notes:              r.Notes,
		ProductURL:         r.ProductURL,
		Consumable:         r.Consumable,
		Wishlist:           r.Wishlist,
		FoodType:           r.FoodType,
		CaloriesPerServing: r.CaloriesPerServing,
		ExpirationDate:     r.ExpirationDate,
		DietaryTags:        r.DietaryTags,
		PreparationMinutes: r.PreparationTimeMinutes,
	}
	if r.Category != nil {
		attrs.Category = r.Category.Category.Name
	}
	if r.Brand != nil {
		attrs.Brand = r.Brand.Name
	}
	if r.NutritionInfo != nil {
		attrs.Protein = r.NutritionInfo.Protein
		attrs.Carbs = r.NutritionInfo.Carbs
		attrs.Fat = r.NutritionInfo.Fat
	}
	return attrs
}

// ItemResponse is the wire shape of an item.
type ItemResponse struct {
	ID                     int64          `json:"id"                                 example:"42"`
	Name                   string         `json:"name"                               example:"Copper Spur UL2"`
	IsFood                 bool           `json:"is_food"`
	Weight                 *float64       `json:"weight,omitempty"                   example:"1.36"`
	Unit                   string         `json:"unit"                               example:"kg"`
	Price                  *float64       `json:"price,omitempty"                    example:"449.95"`
	Category               *CategoryRef   `json:"category,omitempty"`
	Brand                  *BrandRef      `json:"brand,omitempty"`
	Notes                  string         `json:"notes,omitempty"`
	ProductURL             string         `json:"product_url,omitempty"`
	Consumable             bool           `json:"consumable"`
	Wishlist               bool           `json:"wishlist"`
	FoodType               string         `json:"food_type,omitempty"`
	CaloriesPerServing     *float64       `json:"calories_per_serving,omitempty"`
	ExpirationDate         string         `json:"expiration_date,omitempty"          example:"2026-03-01"`
	NutritionInfo          *NutritionInfo `json:"nutrition_info,omitempty"`
	DietaryTags            []string       `json:"dietary_tags,omitempty"`
	PreparationTimeMinutes *int           `json:"preparation_time_minutes,omitempty"`
	CreatedAt              time.Time      `json:"created_at"                         example:"2024-01-15T10:30:00Z"`
	UpdatedAt              time.Time      `json:"updated_at"                         example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// NewItemResponse maps a domain item to its wire shape.
func NewItemResponse(item *models.Item) ItemResponse {
	resp := ItemResponse{
		ID:         item.ID,
		Name:       item.Name.String(),
		IsFood:     item.IsFood,
		Weight:     item.Weight,
		Unit:       item.Unit.String(),
		Price:      item.Price,
		Notes:      item.Notes,
		ProductURL: item.ProductURL,
		Consumable: item.Consumable,
		Wishlist:   item.Wishlist,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
	if item.Category != "" {
		resp.Category = &CategoryRef{Category: CategoryName{Name: item.Category}}
	}
	if item.Brand != "" {
		resp.Brand = &BrandRef{Name: item.Brand}
	}
	if !item.IsFood {
		return resp
	}

	resp.FoodType = string(item.FoodType)
	resp.CaloriesPerServing = item.CaloriesPerServing
	resp.DietaryTags = item.DietaryTags
	resp.PreparationTimeMinutes = item.PreparationMinutes
	if item.ExpirationDate != nil {
		resp.ExpirationDate = models.FormatDate(*item.ExpirationDate)
	}
	if item.Nutrition != nil {
		resp.NutritionInfo = &NutritionInfo{
			Protein: item.Nutrition.Protein,
			Carbs:   item.Nutrition.Carbs,
			Fat:     item.Nutrition.Fat,
		}
	}
	return resp
}

func itemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewItemResponse(item))
	}
	return out
}

// ListItemsResponse is a page of items.
type ListItemsResponse struct {
	Items  []ItemResponse `json:"items"`
	Total  int            `json:"total"  example:"120"`
	Limit  int            `json:"limit"  example:"50"`
	Offset int            `json:"offset" example:"0"`
} // @name ListItemsResponse

// NutritionTotals is a nutrition rollup.
type NutritionTotals struct {
	Calories float64 `json:"calories" example:"2150"`
	Protein  float64 `json:"protein"  example:"85"`
	Carbs    float64 `json:"carbs"    example:"260"`
	Fat      float64 `json:"fat"      example:"70"`
} // @name NutritionTotals

// NewNutritionTotals maps an engine rollup to its wire shape.
func NewNutritionTotals(n domainsvcs.Nutrition) NutritionTotals {
	return NutritionTotals{Calories: n.Calories, Protein: n.Protein, Carbs: n.Carbs, Fat: n.Fat}
}

// ItemGroupResponse is one category bucket of the gear view.
type ItemGroupResponse struct {
	Key   string         `json:"key" example:"Shelter"`
	Items []ItemResponse `json:"items"`
} // @name ItemGroupResponse

// GearViewResponse is the gear inventory grouped by category.
type GearViewResponse struct {
	Groups           []ItemGroupResponse `json:"groups"`
	Categories       []string            `json:"categories"`
	Count            int                 `json:"count"              example:"14"`
	TotalWeightGrams float64             `json:"total_weight_grams" example:"8420.5"`
	TotalPrice       float64             `json:"total_price"        example:"1890.4"`
} // @name GearViewResponse

func newGearViewResponse(v *services.GearView) GearViewResponse {
	resp := GearViewResponse{
		Groups:           make([]ItemGroupResponse, 0, len(v.Groups)),
		Categories:       v.Categories,
		Count:            len(v.Items),
		TotalWeightGrams: v.TotalWeight,
		TotalPrice:       v.TotalPrice,
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	for _, g := range v.Groups {
		resp.Groups = append(resp.Groups, ItemGroupResponse{Key: g.Key, Items: itemResponses(g.Items)})
	}
	return resp
}

// FoodItemResponse is a food item annotated with its expiration state.
type FoodItemResponse struct {
	ItemResponse
	ExpirationState string `json:"expiration_state" example:"expiring_soon"`
} // @name FoodItemResponse

// FoodGroupResponse is one food-type bucket of the food view.
type FoodGroupResponse struct {
	Key   string             `json:"key" example:"dinner"`
	Items []FoodItemResponse `json:"items"`
} // @name FoodGroupResponse

// FoodViewResponse is the food inventory grouped by food type.
type FoodViewResponse struct {
	Groups            []FoodGroupResponse `json:"groups"`
	Nutrition         NutritionTotals     `json:"nutrition"`
	TotalWeightGrams  float64             `json:"total_weight_grams"  example:"3100"`
	TotalPrice        float64             `json:"total_price"         example:"84.2"`
	ExpiredCount      int                 `json:"expired_count"       example:"1"`
	ExpiringSoonCount int                 `json:"expiring_soon_count" example:"2"`
} // @name FoodViewResponse

func newFoodViewResponse(v *services.FoodView) FoodViewResponse {
	resp := FoodViewResponse{
		Groups:            make([]FoodGroupResponse, 0, len(v.Groups)),
		Nutrition:         NewNutritionTotals(v.Nutrition),
		TotalWeightGrams:  v.TotalWeight,
		TotalPrice:        v.TotalPrice,
		ExpiredCount:      v.ExpiredCount,
		ExpiringSoonCount: v.SoonCount,
	}
	for _, g := range v.Groups {
		fg := FoodGroupResponse{Key: g.Key, Items: make([]FoodItemResponse, 0, len(g.Items))}
		for _, e := range g.Items {
			fg.Items = append(fg.Items, FoodItemResponse{
				ItemResponse:    NewItemResponse(e.Item),
				ExpirationState: string(e.Expiration),
			})
		}
		resp.Groups = append(resp.Groups, fg)
	}
	return resp
}
