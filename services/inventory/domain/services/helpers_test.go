package services

import (
	"math"
	"time"

	"github.com/ghuser/packstack/services/inventory/domain/models"
)

func ptr[T any](v T) *T { return &v }

func gear(id int64, name string) *models.Item {
	return &models.Item{ID: id, Name: models.ItemName(name), Unit: models.UnitGram}
}

func food(id int64, name string, ft models.FoodType) *models.Item {
	return &models.Item{ID: id, Name: models.ItemName(name), IsFood: true, FoodType: ft, Unit: models.UnitGram}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func ids(items []*models.Item) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
