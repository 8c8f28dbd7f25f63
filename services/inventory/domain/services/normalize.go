// Package services contains stateless domain services for the inventory bounded context.
// Everything here is a pure function over a caller-owned snapshot of items: no I/O,
// no stored state, and inputs are never mutated.
package services

import (
	"fmt"
	"time"

	"github.com/ghuser/packstack/services/inventory/domain/models"
)

// NormalizeWeight converts value in unit to grams.
func NormalizeWeight(value float64, unit models.Unit) (float64, error) {
	per, err := unit.GramsPer()
	if err != nil {
		return 0, fmt.Errorf("normalize weight: %w", err)
	}
	return value * per, nil
}

// Ordering is the result of comparing two calendar days.
type Ordering int

const (
	Before Ordering = iota - 1
	Same
	After
)

func (o Ordering) String() string {
	switch o {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "same"
	}
}

// CompareDates compares a and b at calendar-day granularity.
func CompareDates(a, b time.Time) Ordering {
	da, db := models.CalendarDay(a), models.CalendarDay(b)
	switch {
	case da.Before(db):
		return Before
	case da.After(db):
		return After
	default:
		return Same
	}
}

// weightGrams is the item's weight in grams, zero when absent.
// Units are parsed like request input, so "KG" reads as kilograms and an empty
// unit as grams. Items are only built with valid units; anything else weighs zero.
func weightGrams(item *models.Item) float64 {
	if item == nil || item.Weight == nil {
		return 0
	}
	unit, err := models.ParseUnit(string(item.Unit))
	if err != nil {
		return 0
	}
	g, err := NormalizeWeight(*item.Weight, unit)
	if err != nil {
		return 0
	}
	return g
}

func price(item *models.Item) float64 {
	if item == nil || item.Price == nil {
		return 0
	}
	return *item.Price
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
