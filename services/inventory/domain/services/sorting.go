package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ghuser/packstack/services/inventory/domain"
	"github.com/ghuser/packstack/services/inventory/domain/models"
)

// SortCriterion names an item ordering.
type SortCriterion string

const (
	SortNone       SortCriterion = ""
	SortName       SortCriterion = "name"
	SortWeightAsc  SortCriterion = "weight-asc"
	SortWeightDesc SortCriterion = "weight-desc"
	SortPriceAsc   SortCriterion = "price-asc"
	SortPriceDesc  SortCriterion = "price-desc"
)

// ParseSortCriterion validates s. The empty criterion keeps input order.
func ParseSortCriterion(s string) (SortCriterion, error) {
	c := SortCriterion(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case SortNone, SortName, SortWeightAsc, SortWeightDesc, SortPriceAsc, SortPriceDesc:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidSortCriterion, s)
}

// SortItems returns a sorted copy of items. The sort is stable: ties keep input order.
// Missing weights and prices sort as zero; weights compare in grams. Nil items sort last.
func SortItems(items []*models.Item, criterion SortCriterion) ([]*models.Item, error) {
	var compare func(a, b *models.Item) int

	switch criterion {
	case SortNone:
	case SortName:
		// collators carry scratch buffers and are not safe to share across goroutines
		col := collate.New(language.English, collate.IgnoreCase)
		compare = func(a, b *models.Item) int {
			return col.CompareString(a.Name.String(), b.Name.String())
		}
	case SortWeightAsc:
		compare = func(a, b *models.Item) int { return cmp.Compare(weightGrams(a), weightGrams(b)) }
	case SortWeightDesc:
		compare = func(a, b *models.Item) int { return cmp.Compare(weightGrams(b), weightGrams(a)) }
	case SortPriceAsc:
		compare = func(a, b *models.Item) int { return cmp.Compare(price(a), price(b)) }
	case SortPriceDesc:
		compare = func(a, b *models.Item) int { return cmp.Compare(price(b), price(a)) }
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSortCriterion, string(criterion))
	}

	out := slices.Clone(items)
	if compare != nil {
		slices.SortStableFunc(out, nilsLast(compare))
	}
	return out, nil
}

func nilsLast(compare func(a, b *models.Item) int) func(a, b *models.Item) int {
	return func(a, b *models.Item) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		case b == nil:
			return -1
		}
		return compare(a, b)
	}
}
