package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates an item with the same name already exists for the owner.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrInvalidItemName indicates the item name violates domain constraints.
	ErrInvalidItemName = errors.New("invalid item name")

	// ErrInvalidItem indicates an item whose fields are individually well-formed but
	// violate a domain rule, such as a negative weight.
	ErrInvalidItem = errors.New("invalid item")

	// ErrInvalidUnit indicates a weight unit outside g, kg, oz and lb.
	ErrInvalidUnit = errors.New("invalid weight unit")

	// ErrInvalidFoodType indicates a food type outside the known set.
	ErrInvalidFoodType = errors.New("invalid food type")

	// ErrInvalidDate indicates a date string that is neither YYYY-MM-DD nor RFC 3339.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidSortCriterion indicates an unknown sort key.
	ErrInvalidSortCriterion = errors.New("invalid sort criterion")

	// ErrInvalidDateRange indicates a meal plan whose end date precedes its start date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrDayNotInPlan indicates a date outside the meal plan's trip days.
	ErrDayNotInPlan = errors.New("day not in meal plan")

	// ErrInvalidMealSlot indicates a meal slot other than breakfast, lunch, dinner or snack.
	ErrInvalidMealSlot = errors.New("invalid meal slot")
)
