package models

import (
	"fmt"
	"strings"

	"github.com/ghuser/packstack/services/catalog/domain"
)

// Source names a third-party product catalog.
type Source string

const (
	SourceAmazon  Source = "amazon"
	SourceWalmart Source = "walmart"
)

// ParseSource validates s case-insensitively.
func ParseSource(s string) (Source, error) {
	switch src := Source(strings.ToLower(strings.TrimSpace(s))); src {
	case SourceAmazon, SourceWalmart:
		return src, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownSource, s)
}

// SourceProduct is a product as one catalog describes it. The set of
// implementations is closed: AmazonProduct and WalmartProduct.
type SourceProduct interface {
	Normalize() CatalogProduct
	sourceProduct()
}

// CatalogProduct is the source-independent product shape handlers work with.
type CatalogProduct struct {
	Source     Source
	ID         string
	Title      string
	Brand      string
	URL        string
	Image      string
	Price      *float64
	Currency   string
	Rating     *float64
	Reviews    int
	Category   string
	Prime      bool
	InStock    *bool
	Features   []string
	Weight     *float64
	WeightUnit string
}

// Prefill is an inventory item draft built from a catalog product.
type Prefill struct {
	Name       string
	Brand      string
	Category   string
	Price      *float64
	Weight     *float64
	Unit       string
	ProductURL string
	Notes      string
}

const maxPrefillName = 255

// PrefillItem turns the product into an item draft for the create form.
// Category is the last segment of a "/"-separated category path.
func (p CatalogProduct) PrefillItem() Prefill {
	name := []rune(strings.TrimSpace(p.Title))
	if len(name) > maxPrefillName {
		name = name[:maxPrefillName]
	}
	out := Prefill{
		Name:       string(name),
		Brand:      p.Brand,
		Price:      p.Price,
		ProductURL: p.URL,
		Notes:      strings.Join(p.Features, "\n"),
	}
	if p.Category != "" {
		parts := strings.Split(p.Category, "/")
		out.Category = strings.TrimSpace(parts[len(parts)-1])
	}
	if p.Weight != nil && p.WeightUnit != "" {
		out.Weight, out.Unit = p.Weight, p.WeightUnit
	}
	return out
}

// weightUnitCode maps catalog unit labels onto the inventory's unit codes.
func weightUnitCode(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "g", "gram", "grams":
		return "g"
	case "kg", "kilogram", "kilograms":
		return "kg"
	case "oz", "ounce", "ounces":
		return "oz"
	case "lb", "lbs", "pound", "pounds":
		return "lb"
	}
	return ""
}
