package services

import (
	"errors"
	"testing"

	"github.com/ghuser/packstack/services/inventory/domain"
	"github.com/ghuser/packstack/services/inventory/domain/models"
)

func names(items []*models.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name.String()
	}
	return out
}

func TestSortItems_Name(t *testing.T) {
	items := []*models.Item{gear(1, "Tent"), gear(2, "axe"), gear(3, "Stove")}

	got, err := SortItems(items, SortName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"axe", "Stove", "Tent"}
	for i := range want {
		if names(got)[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", names(got), want)
		}
	}

	if !equalIDs(ids(items), []int64{1, 2, 3}) {
		t.Fatalf("input mutated: %v", ids(items))
	}
}

func TestSortItems_NameIsStable(t *testing.T) {
	items := []*models.Item{gear(1, "Cup"), gear(2, "Bowl"), gear(3, "Cup"), gear(4, "Cup")}

	got, err := SortItems(items, SortName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(ids(got), []int64{2, 1, 3, 4}) {
		t.Fatalf("sorted = %v, want [2 1 3 4]", ids(got))
	}
}

func TestSortItems_NilItemsLast(t *testing.T) {
	for _, c := range []SortCriterion{SortName, SortWeightAsc, SortWeightDesc, SortPriceAsc, SortPriceDesc} {
		t.Run(string(c), func(t *testing.T) {
			items := []*models.Item{nil, gear(1, "Tent"), nil, gear(2, "axe")}
			got, err := SortItems(items, c)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 4 || got[0] == nil || got[1] == nil || got[2] != nil || got[3] != nil {
				t.Fatalf("expected nil items at the end, got %v", got)
			}
		})
	}
}

func TestSortItems_Weight(t *testing.T) {
	heavy := gear(1, "heavy")
	heavy.Weight = ptr(30.0)
	none := gear(2, "none")
	light := gear(3, "light")
	light.Weight = ptr(10.0)

	items := []*models.Item{heavy, none, light}

	t.Run("asc treats missing weight as zero", func(t *testing.T) {
		got, err := SortItems(items, SortWeightAsc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !equalIDs(ids(got), []int64{2, 3, 1}) {
			t.Fatalf("sorted = %v, want [2 3 1]", ids(got))
		}
	})

	t.Run("desc", func(t *testing.T) {
		got, err := SortItems(items, SortWeightDesc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !equalIDs(ids(got), []int64{1, 3, 2}) {
			t.Fatalf("sorted = %v, want [1 3 2]", ids(got))
		}
	})

	t.Run("compares normalized grams", func(t *testing.T) {
		kg := gear(1, "kg")
		kg.Weight = ptr(1.0)
		kg.Unit = models.UnitKilogram
		g := gear(2, "g")
		g.Weight = ptr(900.0)
		lb := gear(3, "lb")
		lb.Weight = ptr(1.0)
		lb.Unit = models.UnitPound

		got, err := SortItems([]*models.Item{kg, g, lb}, SortWeightAsc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !equalIDs(ids(got), []int64{3, 2, 1}) {
			t.Fatalf("sorted = %v, want [3 2 1]", ids(got))
		}
	})
}

func TestSortItems_Price(t *testing.T) {
	a := gear(1, "a")
	a.Price = ptr(49.99)
	b := gear(2, "b")
	c := gear(3, "c")
	c.Price = ptr(49.99)
	d := gear(4, "d")
	d.Price = ptr(5.0)

	items := []*models.Item{a, b, c, d}

	asc, err := SortItems(items, SortPriceAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(ids(asc), []int64{2, 4, 1, 3}) {
		t.Fatalf("asc = %v, want [2 4 1 3]", ids(asc))
	}

	desc, err := SortItems(items, SortPriceDesc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(ids(desc), []int64{1, 3, 4, 2}) {
		t.Fatalf("desc = %v, want [1 3 4 2]", ids(desc))
	}
}

func TestSortItems_Criterion(t *testing.T) {
	items := []*models.Item{gear(3, "c"), gear(1, "a")}

	t.Run("empty criterion keeps input order", func(t *testing.T) {
		got, err := SortItems(items, SortNone)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !equalIDs(ids(got), []int64{3, 1}) {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("unknown criterion fails", func(t *testing.T) {
		_, err := SortItems(items, SortCriterion("color"))
		if !errors.Is(err, domain.ErrInvalidSortCriterion) {
			t.Fatalf("expected ErrInvalidSortCriterion, got %v", err)
		}
	})

	t.Run("parse", func(t *testing.T) {
		if c, err := ParseSortCriterion(" Weight-Desc "); err != nil || c != SortWeightDesc {
			t.Fatalf("got %q, %v", c, err)
		}
		if _, err := ParseSortCriterion("newest"); !errors.Is(err, domain.ErrInvalidSortCriterion) {
			t.Fatalf("expected ErrInvalidSortCriterion, got %v", err)
		}
	})
}
