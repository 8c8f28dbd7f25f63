package models

import (
	"strings"
	"unicode"
)

// minTitleSimilarity is the share of title words two listings must have in
// common to be treated as the same product.
const minTitleSimilarity = 0.5

// PriceComparison pairs an Amazon and a Walmart listing of the same product.
type PriceComparison struct {
	Title   string
	Amazon  CatalogProduct
	Walmart CatalogProduct
	// Difference is the Amazon price minus the Walmart price.
	Difference float64
}

// Cheaper names the source with the lower price, or "" when both match.
func (c PriceComparison) Cheaper() Source {
	switch {
	case c.Difference > 0:
		return SourceWalmart
	case c.Difference < 0:
		return SourceAmazon
	}
	return ""
}

// ComparePrices matches priced Amazon listings to priced Walmart listings by
// title. Each listing is used at most once; pairs follow the Amazon order and
// each Amazon listing takes the most similar remaining Walmart listing.
func ComparePrices(amazon, walmart []CatalogProduct) []PriceComparison {
	wTitles := make([]map[string]struct{}, len(walmart))
	for i, w := range walmart {
		wTitles[i] = titleWords(w.Title)
	}
	used := make([]bool, len(walmart))

	var out []PriceComparison
	for _, a := range amazon {
		if a.Price == nil {
			continue
		}
		aWords := titleWords(a.Title)

		best, bestScore := -1, minTitleSimilarity
		for i, w := range walmart {
			if used[i] || w.Price == nil {
				continue
			}
			if score := jaccard(aWords, wTitles[i]); score >= bestScore && (best < 0 || score > bestScore) {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			continue
		}

		used[best] = true
		w := walmart[best]
		out = append(out, PriceComparison{
			Title:      a.Title,
			Amazon:     a,
			Walmart:    w,
			Difference: *a.Price - *w.Price,
		})
	}
	return out
}

func titleWords(title string) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shared := 0
	for w := range a {
		if _, ok := b[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(a)+len(b)-shared)
}
