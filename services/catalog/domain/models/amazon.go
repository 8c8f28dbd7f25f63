package models

// AmazonProduct mirrors a PA-API 5.0 item. Every nested block is optional
// and depends on the Resources the request asked for.
type AmazonProduct struct {
	ASIN          string `json:"ASIN"`
	DetailPageURL string `json:"DetailPageURL"`
	ItemInfo      struct {
		Title      *amazonDisplayString `json:"Title"`
		ByLineInfo *struct {
			Brand *amazonDisplayString `json:"Brand"`
		} `json:"ByLineInfo"`
		Features *struct {
			DisplayValues []string `json:"DisplayValues"`
		} `json:"Features"`
		Classifications *struct {
			ProductGroup *amazonDisplayString `json:"ProductGroup"`
		} `json:"Classifications"`
		ProductInfo *struct {
			ItemDimensions *struct {
				Weight *struct {
					DisplayValue float64 `json:"DisplayValue"`
					Unit         string  `json:"Unit"`
				} `json:"Weight"`
			} `json:"ItemDimensions"`
		} `json:"ProductInfo"`
	} `json:"ItemInfo"`
	Images *struct {
		Primary *struct {
			Medium *amazonImage `json:"Medium"`
			Large  *amazonImage `json:"Large"`
		} `json:"Primary"`
	} `json:"Images"`
	Offers *struct {
		Listings []struct {
			Price *struct {
				Amount        float64 `json:"Amount"`
				Currency      string  `json:"Currency"`
				DisplayAmount string  `json:"DisplayAmount"`
			} `json:"Price"`
			DeliveryInfo *struct {
				IsPrimeEligible bool `json:"IsPrimeEligible"`
			} `json:"DeliveryInfo"`
			Availability *struct {
				Type string `json:"Type"`
			} `json:"Availability"`
		} `json:"Listings"`
	} `json:"Offers"`
}

type amazonDisplayString struct {
	DisplayValue string `json:"DisplayValue"`
}

type amazonImage struct {
	URL string `json:"URL"`
}

func (AmazonProduct) sourceProduct() {}

// Normalize flattens the optional PA-API blocks. Only the first offer listing is used.
func (a AmazonProduct) Normalize() CatalogProduct {
	p := CatalogProduct{
		Source: SourceAmazon,
		ID:     a.ASIN,
		URL:    a.DetailPageURL,
	}

	info := a.ItemInfo
	if info.Title != nil {
		p.Title = info.Title.DisplayValue
	}
	if info.ByLineInfo != nil && info.ByLineInfo.Brand != nil {
		p.Brand = info.ByLineInfo.Brand.DisplayValue
	}
	if info.Features != nil {
		p.Features = info.Features.DisplayValues
	}
	if info.Classifications != nil && info.Classifications.ProductGroup != nil {
		p.Category = info.Classifications.ProductGroup.DisplayValue
	}
	if info.ProductInfo != nil && info.ProductInfo.ItemDimensions != nil {
		if w := info.ProductInfo.ItemDimensions.Weight; w != nil {
			if code := weightUnitCode(w.Unit); code != "" {
				v := w.DisplayValue
				p.Weight, p.WeightUnit = &v, code
			}
		}
	}

	if a.Images != nil && a.Images.Primary != nil {
		switch {
		case a.Images.Primary.Large != nil:
			p.Image = a.Images.Primary.Large.URL
		case a.Images.Primary.Medium != nil:
			p.Image = a.Images.Primary.Medium.URL
		}
	}

	if a.Offers != nil && len(a.Offers.Listings) > 0 {
		l := a.Offers.Listings[0]
		if l.Price != nil {
			amount := l.Price.Amount
			p.Price, p.Currency = &amount, l.Price.Currency
		}
		if l.DeliveryInfo != nil {
			p.Prime = l.DeliveryInfo.IsPrimeEligible
		}
		if l.Availability != nil && l.Availability.Type != "" {
			in := l.Availability.Type == "Now"
			p.InStock = &in
		}
	}
	return p
}
