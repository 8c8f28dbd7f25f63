package models

import (
	"fmt"
	"strings"

	"github.com/ghuser/packstack/services/inventory/domain"
)

// Unit is a weight unit. The zero value is not valid; use ParseUnit.
type Unit string

const (
	UnitGram     Unit = "g"
	UnitKilogram Unit = "kg"
	UnitOunce    Unit = "oz"
	UnitPound    Unit = "lb"

	// DefaultUnit is applied when a client omits the unit.
	DefaultUnit = UnitGram
)

// Grams per unit.
const (
	gramsPerKilogram = 1000.0
	gramsPerOunce    = 28.3495
	gramsPerPound    = 453.592
)

// ParseUnit converts s into a Unit. An empty string yields DefaultUnit.
// Matching is case-insensitive; anything outside g, kg, oz and lb is ErrInvalidUnit.
func ParseUnit(s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultUnit, nil
	}
	u := Unit(s)
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidUnit, s)
	}
	return u, nil
}

// Valid reports whether u is one of the four supported units.
func (u Unit) Valid() bool {
	switch u {
	case UnitGram, UnitKilogram, UnitOunce, UnitPound:
		return true
	}
	return false
}

// GramsPer returns how many grams one u weighs.
func (u Unit) GramsPer() (float64, error) {
	switch u {
	case UnitGram:
		return 1, nil
	case UnitKilogram:
		return gramsPerKilogram, nil
	case UnitOunce:
		return gramsPerOunce, nil
	case UnitPound:
		return gramsPerPound, nil
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrInvalidUnit, string(u))
}

// String returns the underlying string value.
func (u Unit) String() string {
	return string(u)
}
