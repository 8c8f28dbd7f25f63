package domain

import "errors"

// Sentinel errors for the trip domain.
var (
	// ErrMealPlanNotFound indicates the plan id is unknown, belongs to another owner, or expired.
	ErrMealPlanNotFound = errors.New("meal plan not found")

	// ErrInvalidPlanName indicates a plan name longer than the allowed length.
	ErrInvalidPlanName = errors.New("invalid plan name")

	// ErrNotFood indicates an attempt to put a gear item into a meal slot.
	ErrNotFood = errors.New("item is not food")
)
