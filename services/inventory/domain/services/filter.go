package services

import (
	"strings"
	"time"

	"github.com/ghuser/packstack/services/inventory/domain/models"
)

// Predicate reports whether an item belongs in a filtered view.
type Predicate func(*models.Item) bool

// Filter keeps the items matching every predicate, in input order.
// With no predicates every non-nil item is kept.
func Filter(items []*models.Item, preds ...Predicate) []*models.Item {
	out := make([]*models.Item, 0, len(items))
outer:
	for _, item := range items {
		if item == nil {
			continue
		}
		for _, p := range preds {
			if !p(item) {
				continue outer
			}
		}
		out = append(out, item)
	}
	return out
}

// MatchesSearch is a case-insensitive substring match on name, notes and brand.
// An empty term matches everything.
func MatchesSearch(item *models.Item, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{item.Name.String(), item.Notes, item.Brand} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Search returns a Predicate for MatchesSearch.
func Search(term string) Predicate {
	return func(item *models.Item) bool { return MatchesSearch(item, term) }
}

func IsFood(item *models.Item) bool { return item.IsFood }

func IsGear(item *models.Item) bool { return !item.IsFood }

// PartitionFood splits items into gear and food, each in input order.
func PartitionFood(items []*models.Item) (gear, food []*models.Item) {
	for _, item := range items {
		if item == nil {
			continue
		}
		if item.IsFood {
			food = append(food, item)
		} else {
			gear = append(gear, item)
		}
	}
	return gear, food
}

// Expiration classifies a food item's shelf life relative to today.
type Expiration string

const (
	ExpirationNone    Expiration = "none"
	ExpirationFresh   Expiration = "fresh"
	ExpirationSoon    Expiration = "expiring_soon"
	ExpirationExpired Expiration = "expired"
)

// expiringSoonWindow is the number of days, counted from today, that count as expiring soon.
const expiringSoonWindow = 7

// ExpirationState classifies item against today. An item whose expiration day is
// today is already expired; one to six days out is expiring soon.
func ExpirationState(item *models.Item, today time.Time) Expiration {
	if !item.IsFood || item.ExpirationDate == nil {
		return ExpirationNone
	}
	days := daysBetween(today, *item.ExpirationDate)
	switch {
	case days <= 0:
		return ExpirationExpired
	case days < expiringSoonWindow:
		return ExpirationSoon
	default:
		return ExpirationFresh
	}
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(models.CalendarDay(b).Sub(models.CalendarDay(a)).Hours() / 24)
}

// HasDietaryTag reports case-insensitive tag membership. Gear never matches.
func HasDietaryTag(item *models.Item, tag string) bool {
	if !item.IsFood {
		return false
	}
	tag = strings.TrimSpace(tag)
	for _, t := range item.DietaryTags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}

// InCategory matches the category tab case-insensitively.
// "all" and the empty name match everything.
func InCategory(item *models.Item, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "all") {
		return true
	}
	return strings.EqualFold(CategoryKey(item), name)
}

// Food tab names besides the food types themselves.
const (
	FoodTabAll     = "all"
	FoodTabExpired = "expired"
)

// MatchesFoodTab applies a food inventory tab: all, expired, or a food type.
func MatchesFoodTab(item *models.Item, tab string, today time.Time) bool {
	tab = strings.ToLower(strings.TrimSpace(tab))
	switch tab {
	case "", FoodTabAll:
		return true
	case FoodTabExpired:
		return ExpirationState(item, today) == ExpirationExpired
	default:
		return strings.EqualFold(FoodTypeKey(item), tab)
	}
}

// FoodsForSlot returns food items whose type is the slot itself or a general meal.
func FoodsForSlot(items []*models.Item, slot models.MealSlot) []*models.Item {
	return Filter(items, IsFood, func(item *models.Item) bool {
		return item.FoodType == models.FoodType(slot) || item.FoodType == models.FoodMeal
	})
}
