package services

import (
	"slices"
	"testing"

	"github.com/ghuser/packstack/services/inventory/domain/models"
)

func TestGroupBy_PreservesInputOrder(t *testing.T) {
	a := gear(1, "A")
	a.Category = "X"
	b := gear(2, "B")
	b.Category = "Y"
	c := gear(3, "C")
	c.Category = "X"

	groups := GroupBy([]*models.Item{a, b, c}, CategoryKey)

	if !equalIDs(ids(groups["X"]), []int64{1, 3}) {
		t.Fatalf("group X = %v, want [1 3]", ids(groups["X"]))
	}
	if !equalIDs(ids(groups["Y"]), []int64{2}) {
		t.Fatalf("group Y = %v, want [2]", ids(groups["Y"]))
	}
}

func TestGroupKeys_Defaults(t *testing.T) {
	t.Run("missing category is Uncategorized", func(t *testing.T) {
		groups := GroupBy([]*models.Item{gear(1, "Knife")}, CategoryKey)
		if _, ok := groups[Uncategorized]; !ok {
			t.Fatalf("expected %q group, got keys %v", Uncategorized, groups.Keys())
		}
	})

	t.Run("blank category is Uncategorized", func(t *testing.T) {
		item := gear(1, "Knife")
		item.Category = "  "
		if got := CategoryKey(item); got != Uncategorized {
			t.Fatalf("CategoryKey = %q", got)
		}
	})

	t.Run("missing food type is other", func(t *testing.T) {
		if got := FoodTypeKey(food(1, "Mystery", "")); got != "other" {
			t.Fatalf("FoodTypeKey = %q", got)
		}
		if got := FoodTypeKey(food(1, "Oats", models.FoodBreakfast)); got != "breakfast" {
			t.Fatalf("FoodTypeKey = %q", got)
		}
	})
}

func TestGroups_FlattenRoundTrip(t *testing.T) {
	var items []*models.Item
	cats := []string{"Shelter", "", "Cooking", "Shelter", "Sleep", "", "Cooking"}
	for i, cat := range cats {
		item := gear(int64(i+1), "item")
		item.Category = cat
		items = append(items, item)
	}

	groups := GroupBy(items, CategoryKey)
	flat := groups.Flatten()

	if len(flat) != len(items) {
		t.Fatalf("flattened %d items, want %d", len(flat), len(items))
	}
	got := ids(flat)
	slices.Sort(got)
	want := ids(items)
	slices.Sort(want)
	if !equalIDs(got, want) {
		t.Fatalf("multiset mismatch: got %v want %v", got, want)
	}

	// key order: Cooking, Shelter, Sleep, Uncategorized
	if !equalIDs(ids(flat), []int64{3, 7, 1, 4, 5, 2, 6}) {
		t.Fatalf("flatten order = %v", ids(flat))
	}
}

func TestCategoryNames(t *testing.T) {
	a := gear(1, "Tent")
	a.Category = "Shelter"
	b := gear(2, "Pot")
	b.Category = "Cooking"
	c := gear(3, "Tarp")
	c.Category = "Shelter"

	got := CategoryNames([]*models.Item{a, b, c, gear(4, "Knife")})
	want := []string{"Cooking", "Shelter", "Uncategorized"}
	if !slices.Equal(got, want) {
		t.Fatalf("CategoryNames = %v, want %v", got, want)
	}

	if got := CategoryNames(nil); len(got) != 0 {
		t.Fatalf("expected no names, got %v", got)
	}
}
