package services

import (
	"testing"
	"time"

	"github.com/ghuser/packstack/services/inventory/domain/models"
)

func TestMatchesSearch(t *testing.T) {
	item := &models.Item{Name: "Titanium Pot", Notes: "Fits a fuel canister", Brand: "TOAKS"}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"titanium", true},
		{"CANISTER", true},
		{"toaks", true},
		{"stove", false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if got := MatchesSearch(item, tt.term); got != tt.want {
				t.Fatalf("MatchesSearch(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestPartitionFood(t *testing.T) {
	items := []*models.Item{gear(1, "Tent"), food(2, "Oats", models.FoodBreakfast), gear(3, "Stove"), nil, food(4, "Chili", models.FoodDinner)}

	g, f := PartitionFood(items)
	if !equalIDs(ids(g), []int64{1, 3}) {
		t.Fatalf("gear = %v", ids(g))
	}
	if !equalIDs(ids(f), []int64{2, 4}) {
		t.Fatalf("food = %v", ids(f))
	}
	for _, item := range g {
		if !IsGear(item) || IsFood(item) {
			t.Fatalf("item %d misclassified", item.ID)
		}
	}
}

func TestExpirationState(t *testing.T) {
	today := date(2025, 6, 15)

	withExp := func(days int) *models.Item {
		item := food(1, "Jerky", models.FoodSnack)
		item.ExpirationDate = ptr(today.AddDate(0, 0, days))
		return item
	}

	tests := []struct {
		name string
		item *models.Item
		want Expiration
	}{
		{"no expiration date", food(1, "Rice", models.FoodDinner), ExpirationNone},
		{"gear ignores expiration", func() *models.Item {
			item := gear(1, "Tent")
			item.ExpirationDate = ptr(today.AddDate(0, 0, -3))
			return item
		}(), ExpirationNone},
		{"yesterday", withExp(-1), ExpirationExpired},
		// same-day items are already expired, not expiring today
		{"today is expired", withExp(0), ExpirationExpired},
		{"tomorrow", withExp(1), ExpirationSoon},
		{"six days out", withExp(6), ExpirationSoon},
		{"seven days out", withExp(7), ExpirationFresh},
		{"next year", withExp(365), ExpirationFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpirationState(tt.item, today); got != tt.want {
				t.Fatalf("ExpirationState = %s, want %s", got, tt.want)
			}
		})
	}

	t.Run("time of day of today is ignored", func(t *testing.T) {
		if got := ExpirationState(withExp(1), today.Add(23*time.Hour)); got != ExpirationSoon {
			t.Fatalf("got %s, want %s", got, ExpirationSoon)
		}
	})
}

func TestHasDietaryTag(t *testing.T) {
	item := food(1, "Lentil Curry", models.FoodDinner)
	item.DietaryTags = []string{"Vegan", "gluten-free"}

	if !HasDietaryTag(item, "vegan") {
		t.Fatal("expected case-insensitive match")
	}
	if !HasDietaryTag(item, "GLUTEN-FREE") {
		t.Fatal("expected match")
	}
	if HasDietaryTag(item, "keto") {
		t.Fatal("unexpected match")
	}

	g := gear(2, "Tent")
	g.DietaryTags = []string{"vegan"}
	if HasDietaryTag(g, "vegan") {
		t.Fatal("gear must never match dietary tags")
	}
}

func TestInCategory(t *testing.T) {
	tent := gear(1, "Tent")
	tent.Category = "Shelter"
	knife := gear(2, "Knife")

	tests := []struct {
		item *models.Item
		name string
		want bool
	}{
		{tent, "shelter", true},
		{tent, "Cooking", false},
		{tent, "all", true},
		{tent, "", true},
		{knife, "uncategorized", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InCategory(tt.item, tt.name); got != tt.want {
				t.Fatalf("InCategory(%s, %q) = %v, want %v", tt.item.Name, tt.name, got, tt.want)
			}
		})
	}
}

func TestMatchesFoodTab(t *testing.T) {
	today := date(2025, 6, 15)

	oats := food(1, "Oats", models.FoodBreakfast)
	stale := food(2, "Bar", models.FoodSnack)
	stale.ExpirationDate = ptr(today)
	untyped := food(3, "Mystery", "")

	tests := []struct {
		name string
		item *models.Item
		tab  string
		want bool
	}{
		{"all", oats, "all", true},
		{"empty", oats, "", true},
		{"expired tab hit", stale, "expired", true},
		{"expired tab miss", oats, "expired", false},
		{"type tab hit", oats, "Breakfast", true},
		{"type tab miss", oats, "dinner", false},
		{"missing type lands in other", untyped, "other", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesFoodTab(tt.item, tt.tab, today); got != tt.want {
				t.Fatalf("MatchesFoodTab(%q) = %v, want %v", tt.tab, got, tt.want)
			}
		})
	}
}

func TestFoodsForSlot(t *testing.T) {
	items := []*models.Item{
		food(1, "Oats", models.FoodBreakfast),
		food(2, "Pasta", models.FoodMeal),
		food(3, "Chili", models.FoodDinner),
		gear(4, "Stove"),
		food(5, "Granola", models.FoodBreakfast),
	}

	got := FoodsForSlot(items, models.SlotBreakfast)
	if !equalIDs(ids(got), []int64{1, 2, 5}) {
		t.Fatalf("FoodsForSlot(breakfast) = %v", ids(got))
	}
}

func TestFilter(t *testing.T) {
	a := gear(1, "Tent")
	a.Category = "Shelter"
	b := gear(2, "Tarp")
	b.Category = "Shelter"
	b.Notes = "silnylon"
	c := food(3, "Tortillas", models.FoodLunch)

	items := []*models.Item{a, b, c}

	t.Run("no predicates keeps all", func(t *testing.T) {
		if got := Filter(items); len(got) != 3 {
			t.Fatalf("expected 3 items, got %d", len(got))
		}
	})

	t.Run("predicates compose with and", func(t *testing.T) {
		got := Filter(items, IsGear, Search("t"), func(item *models.Item) bool { return InCategory(item, "shelter") })
		if !equalIDs(ids(got), []int64{1, 2}) {
			t.Fatalf("got %v", ids(got))
		}
		got = Filter(items, IsGear, Search("silnylon"))
		if !equalIDs(ids(got), []int64{2}) {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		_ = Filter(items, IsFood)
		if !equalIDs(ids(items), []int64{1, 2, 3}) {
			t.Fatalf("input mutated: %v", ids(items))
		}
	})
}
