package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_NonNil(t *testing.T) {
	for _, err := range []error{
		ErrItemNotFound, ErrItemAlreadyExists, ErrInvalidItemName, ErrInvalidItem, ErrInvalidUnit,
		ErrInvalidFoodType, ErrInvalidDate, ErrInvalidSortCriterion, ErrInvalidDateRange,
		ErrDayNotInPlan, ErrInvalidMealSlot,
	} {
		if err == nil {
			t.Fatal("sentinel error must not be nil")
		}
	}
}

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrItemNotFound.Error() != "item not found" {
		t.Fatalf("unexpected message: %q", ErrItemNotFound.Error())
	}
	if ErrItemAlreadyExists.Error() != "item already exists" {
		t.Fatalf("unexpected message: %q", ErrItemAlreadyExists.Error())
	}
	if ErrInvalidUnit.Error() != "invalid weight unit" {
		t.Fatalf("unexpected message: %q", ErrInvalidUnit.Error())
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %q", ErrInvalidUnit, "stone")
	if !errors.Is(wrapped2, ErrInvalidUnit) {
		t.Fatal("errors.Is must match wrapped ErrInvalidUnit")
	}
	if errors.Is(wrapped2, ErrInvalidItemName) {
		t.Fatal("ErrInvalidUnit must not match ErrInvalidItemName")
	}
}
