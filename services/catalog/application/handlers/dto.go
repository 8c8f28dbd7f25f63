package handlers

import (
	appsvcs "github.com/ghuser/packstack/services/catalog/application/services"
	"github.com/ghuser/packstack/services/catalog/domain/models"
	invhandlers "github.com/ghuser/packstack/services/inventory/application/handlers"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"catalog source not configured: amazon"`
} // @name CatalogErrorResponse

// SearchParams are the query parameters of GET /catalog/search.
type SearchParams struct {
	Source     string `json:"source"      validate:"required,oneof=amazon walmart"`
	Keywords   string `json:"keywords"    validate:"required,max=200"`
	Category   string `json:"category"    validate:"max=100"`
	MaxResults int    `json:"max_results" validate:"gte=0,lte=25"`
}

// ProductResponse is a normalized catalog product.
type ProductResponse struct {
	Source     string   `json:"source"                example:"amazon"`
	ID         string   `json:"id"                    example:"B07XJ8C8F5"`
	Title      string   `json:"title"                 example:"Copper Spur HV UL2"`
	Brand      string   `json:"brand,omitempty"       example:"Big Agnes"`
	URL        string   `json:"url,omitempty"`
	Image      string   `json:"image,omitempty"`
	Price      *float64 `json:"price,omitempty"       example:"449.95"`
	Currency   string   `json:"currency,omitempty"    example:"USD"`
	Rating     *float64 `json:"rating,omitempty"      example:"4.6"`
	Reviews    int      `json:"reviews"               example:"312"`
	Category   string   `json:"category,omitempty"    example:"Sports & Outdoors/Camping/Tents"`
	Prime      bool     `json:"prime"                 example:"true"`
	InStock    *bool    `json:"in_stock,omitempty"    example:"true"`
	Features   []string `json:"features,omitempty"`
	Weight     *float64 `json:"weight,omitempty"      example:"3.2"`
	WeightUnit string   `json:"weight_unit,omitempty" example:"lb"`
} // @name ProductResponse

func newProductResponse(p models.CatalogProduct) ProductResponse {
	return ProductResponse{
		Source:     string(p.Source),
		ID:         p.ID,
		Title:      p.Title,
		Brand:      p.Brand,
		URL:        p.URL,
		Image:      p.Image,
		Price:      p.Price,
		Currency:   p.Currency,
		Rating:     p.Rating,
		Reviews:    p.Reviews,
		Category:   p.Category,
		Prime:      p.Prime,
		InStock:    p.InStock,
		Features:   p.Features,
		Weight:     p.Weight,
		WeightUnit: p.WeightUnit,
	}
}

// SearchResponse lists normalized search results.
type SearchResponse struct {
	Source   string            `json:"source"   example:"walmart"`
	Products []ProductResponse `json:"products"`
	Count    int               `json:"count"    example:"10"`
} // @name SearchResponse

// CompareParams are the query parameters of GET /catalog/compare.
type CompareParams struct {
	Keywords   string `json:"keywords"    validate:"required,max=200"`
	MaxResults int    `json:"max_results" validate:"gte=0,lte=25"`
}

// ComparisonResponse is one product listed by both catalogs.
type ComparisonResponse struct {
	Title        string  `json:"title"            example:"Sawyer Squeeze Water Filter"`
	AmazonID     string  `json:"amazon_id"        example:"B00FA2RLX2"`
	AmazonPrice  float64 `json:"amazon_price"     example:"36"`
	AmazonURL    string  `json:"amazon_url"`
	WalmartID    string  `json:"walmart_id"       example:"21954131"`
	WalmartPrice float64 `json:"walmart_price"    example:"31.5"`
	WalmartURL   string  `json:"walmart_url"`
	Difference   float64 `json:"price_difference" example:"4.5"`
	Cheaper      string  `json:"cheaper"          example:"walmart" enums:"amazon,walmart,same"`
} // @name ComparisonResponse

// CompareResponse holds both result lists and the matched pairs.
type CompareResponse struct {
	Amazon     []ProductResponse    `json:"amazon"`
	Walmart    []ProductResponse    `json:"walmart"`
	Comparison []ComparisonResponse `json:"comparison"`
} // @name CompareResponse

func newCompareResponse(c *appsvcs.Comparison) CompareResponse {
	resp := CompareResponse{
		Amazon:     make([]ProductResponse, 0, len(c.Amazon)),
		Walmart:    make([]ProductResponse, 0, len(c.Walmart)),
		Comparison: make([]ComparisonResponse, 0, len(c.Pairs)),
	}
	for _, p := range c.Amazon {
		resp.Amazon = append(resp.Amazon, newProductResponse(p))
	}
	for _, p := range c.Walmart {
		resp.Walmart = append(resp.Walmart, newProductResponse(p))
	}
	for _, pair := range c.Pairs {
		cheaper := string(pair.Cheaper())
		if cheaper == "" {
			cheaper = "same"
		}
		resp.Comparison = append(resp.Comparison, ComparisonResponse{
			Title:        pair.Title,
			AmazonID:     pair.Amazon.ID,
			AmazonPrice:  *pair.Amazon.Price,
			AmazonURL:    pair.Amazon.URL,
			WalmartID:    pair.Walmart.ID,
			WalmartPrice: *pair.Walmart.Price,
			WalmartURL:   pair.Walmart.URL,
			Difference:   pair.Difference,
			Cheaper:      cheaper,
		})
	}
	return resp
}

// ProductDetailResponse carries the product plus an item draft ready for POST /item.
type ProductDetailResponse struct {
	Product ProductResponse         `json:"product"`
	Prefill invhandlers.ItemRequest `json:"prefill"`
} // @name ProductDetailResponse

func newProductDetailResponse(p models.CatalogProduct) ProductDetailResponse {
	draft := p.PrefillItem()
	req := invhandlers.ItemRequest{
		Name:       draft.Name,
		Price:      draft.Price,
		Weight:     draft.Weight,
		Unit:       draft.Unit,
		Notes:      draft.Notes,
		ProductURL: draft.ProductURL,
	}
	if draft.Brand != "" {
		req.Brand = &invhandlers.BrandRef{Name: draft.Brand}
	}
	if draft.Category != "" {
		req.Category = &invhandlers.CategoryRef{Category: invhandlers.CategoryName{Name: draft.Category}}
	}
	return ProductDetailResponse{Product: newProductResponse(p), Prefill: req}
}

// StoreResponse is a store that stocks an item.
type StoreResponse struct {
	No      int64  `json:"no"      example:"2516"`
	Name    string `json:"name"    example:"Walmart Supercenter"`
	Address string `json:"address" example:"1025 Rainier Ave S"`
	City    string `json:"city"    example:"Renton"`
	State   string `json:"state"   example:"WA"`
	Zip     string `json:"zip"     example:"98055"`
	Phone   string `json:"phone,omitempty"`
} // @name StoreResponse

func newStoreResponses(stores []models.WalmartStore) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, StoreResponse{
			No:      s.No,
			Name:    s.Name,
			Address: s.StreetAddress,
			City:    s.City,
			State:   s.StateProvCode,
			Zip:     s.Zip,
			Phone:   s.PhoneNumber,
		})
	}
	return out
}
