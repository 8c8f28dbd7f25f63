package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// WalmartProduct mirrors an item from the Walmart affiliate product API.
type WalmartProduct struct {
	ItemID          int64     `json:"itemId"`
	Name            string    `json:"name"`
	SalePrice       *float64  `json:"salePrice"`
	ProductURL      string    `json:"productUrl"`
	ProductTrackURL string    `json:"productTrackingUrl"`
	LargeImage      string    `json:"largeImage"`
	MediumImage     string    `json:"mediumImage"`
	CustomerRating  FlexFloat `json:"customerRating"`
	NumReviews      int       `json:"numReviews"`
	CategoryPath    string    `json:"categoryPath"`
	BrandName       string    `json:"brandName"`
	LongDescription string    `json:"longDescription"`
	Stock           string    `json:"stock"`
}

// FlexFloat decodes a number the API sometimes sends as a string ("4.5").
// Empty strings and null leave it unset.
type FlexFloat struct {
	Value float64
	Valid bool
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = FlexFloat{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = FlexFloat{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = FlexFloat{Value: v, Valid: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexFloat{Value: v, Valid: true}
	return nil
}

func (WalmartProduct) sourceProduct() {}

// Normalize maps the affiliate item. Walmart prices are always USD.
func (w WalmartProduct) Normalize() CatalogProduct {
	p := CatalogProduct{
		Source:   SourceWalmart,
		Title:    w.Name,
		Brand:    w.BrandName,
		URL:      w.ProductURL,
		Image:    w.LargeImage,
		Price:    w.SalePrice,
		Reviews:  w.NumReviews,
		Category: w.CategoryPath,
	}
	if w.ItemID != 0 {
		p.ID = strconv.FormatInt(w.ItemID, 10)
	}
	if p.URL == "" {
		p.URL = w.ProductTrackURL
	}
	if p.Image == "" {
		p.Image = w.MediumImage
	}
	if p.Price != nil {
		p.Currency = "USD"
	}
	if w.CustomerRating.Valid {
		r := w.CustomerRating.Value
		p.Rating = &r
	}
	if w.Stock != "" {
		in := w.Stock == "Available"
		p.InStock = &in
	}
	if w.LongDescription != "" {
		p.Features = []string{w.LongDescription}
	}
	return p
}

// WalmartStore is a store returned by the store-availability lookup.
type WalmartStore struct {
	No            int64     `json:"no"`
	Name          string    `json:"name"`
	StreetAddress string    `json:"streetAddress"`
	City          string    `json:"city"`
	StateProvCode string    `json:"stateProvCode"`
	Zip           string    `json:"zip"`
	PhoneNumber   string    `json:"phoneNumber"`
	Coordinates   []float64 `json:"coordinates"`
}
