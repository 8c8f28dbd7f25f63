package services

import (
	"slices"
	"strings"

	"github.com/ghuser/packstack/services/inventory/domain/models"
)

// Default group labels for items missing the grouped field.
const (
	Uncategorized   = "Uncategorized"
	DefaultFoodType = string(models.FoodOther)
)

// KeyFunc extracts the group key of an item.
type KeyFunc func(*models.Item) string

// CategoryKey is the item's category name, or Uncategorized.
func CategoryKey(item *models.Item) string {
	if c := strings.TrimSpace(item.Category); c != "" {
		return c
	}
	return Uncategorized
}

// FoodTypeKey is the item's food type, or other.
func FoodTypeKey(item *models.Item) string {
	if item.FoodType != "" {
		return string(item.FoodType)
	}
	return DefaultFoodType
}

// Groups maps a key to its items, each group in input order.
type Groups map[string][]*models.Item

// GroupBy buckets items by key without reordering within a bucket.
func GroupBy(items []*models.Item, key KeyFunc) Groups {
	groups := make(Groups)
	for _, item := range items {
		if item == nil {
			continue
		}
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// Keys returns the group keys in ascending order.
func (g Groups) Keys() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Flatten concatenates the groups in key order.
func (g Groups) Flatten() []*models.Item {
	var out []*models.Item
	for _, k := range g.Keys() {
		out = append(out, g[k]...)
	}
	return out
}

// CategoryNames returns each distinct category label once, sorted.
func CategoryNames(items []*models.Item) []string {
	return GroupBy(items, CategoryKey).Keys()
}
