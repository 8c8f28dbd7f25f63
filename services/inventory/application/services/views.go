package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/packstack/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/packstack/services/inventory/domain/services"
)

// ItemGroup is one labelled bucket of a grouped view.
type ItemGroup struct {
	Key   string
	Items []*models.Item
}

// GearQuery filters the gear view. Empty fields do not filter.
type GearQuery struct {
	Search   string
	Category string
	Sort     string
}

// GearView is the gear inventory: filtered, sorted, grouped by category, with totals.
type GearView struct {
	Items       []*models.Item
	Groups      []ItemGroup
	Categories  []string
	TotalWeight float64 // grams
	TotalPrice  float64
}

// FoodQuery filters the food view. Tab is all, expired or a food type.
type FoodQuery struct {
	Search string
	Tab    string
	Tag    string
	Sort   string
}

// FoodEntry pairs a food item with its expiration state on the day the view was built.
type FoodEntry struct {
	Item       *models.Item
	Expiration domainsvcs.Expiration
}

// FoodGroup is one food-type bucket of the food view.
type FoodGroup struct {
	Key   string
	Items []FoodEntry
}

// FoodView is the food inventory grouped by food type with nutrition and expiration counts.
type FoodView struct {
	Groups       []FoodGroup
	Nutrition    domainsvcs.Nutrition
	TotalWeight  float64 // grams
	TotalPrice   float64
	ExpiredCount int
	SoonCount    int
}

// GearView builds the gear view of the owner's inventory.
// Category tabs are computed before the category filter so every tab stays visible.
func (s *ItemService) GearView(ctx context.Context, ownerID uuid.UUID, q GearQuery) (*GearView, error) {
	criterion, err := domainsvcs.ParseSortCriterion(q.Sort)
	if err != nil {
		return nil, err
	}

	items, err := s.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	gear := domainsvcs.Filter(items, domainsvcs.IsGear)
	categories := domainsvcs.CategoryNames(gear)

	gear = domainsvcs.Filter(gear,
		domainsvcs.Search(q.Search),
		func(item *models.Item) bool { return domainsvcs.InCategory(item, q.Category) },
	)
	sorted, err := domainsvcs.SortItems(gear, criterion)
	if err != nil {
		return nil, err
	}

	groups := domainsvcs.GroupBy(sorted, domainsvcs.CategoryKey)
	view := &GearView{
		Items:       sorted,
		Categories:  categories,
		TotalWeight: domainsvcs.SumWeight(sorted),
		TotalPrice:  domainsvcs.SumPrice(sorted),
	}
	for _, k := range groups.Keys() {
		view.Groups = append(view.Groups, ItemGroup{Key: k, Items: groups[k]})
	}
	return view, nil
}

// FoodView builds the food view of the owner's inventory as of today.
func (s *ItemService) FoodView(ctx context.Context, ownerID uuid.UUID, q FoodQuery) (*FoodView, error) {
	criterion, err := domainsvcs.ParseSortCriterion(q.Sort)
	if err != nil {
		return nil, err
	}

	items, err := s.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	preds := []domainsvcs.Predicate{
		domainsvcs.IsFood,
		domainsvcs.Search(q.Search),
		func(item *models.Item) bool { return domainsvcs.MatchesFoodTab(item, q.Tab, today) },
	}
	if q.Tag != "" {
		preds = append(preds, func(item *models.Item) bool { return domainsvcs.HasDietaryTag(item, q.Tag) })
	}

	food, err := domainsvcs.SortItems(domainsvcs.Filter(items, preds...), criterion)
	if err != nil {
		return nil, err
	}

	view := &FoodView{
		Nutrition:   domainsvcs.NutritionTotals(food),
		TotalWeight: domainsvcs.SumWeight(food),
		TotalPrice:  domainsvcs.SumPrice(food),
	}

	groups := domainsvcs.GroupBy(food, domainsvcs.FoodTypeKey)
	for _, k := range groups.Keys() {
		g := FoodGroup{Key: k}
		for _, item := range groups[k] {
			state := domainsvcs.ExpirationState(item, today)
			switch state {
			case domainsvcs.ExpirationExpired:
				view.ExpiredCount++
			case domainsvcs.ExpirationSoon:
				view.SoonCount++
			}
			g.Items = append(g.Items, FoodEntry{Item: item, Expiration: state})
		}
		view.Groups = append(view.Groups, g)
	}
	return view, nil
}
