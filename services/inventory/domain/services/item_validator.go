package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/packstack/services/inventory/domain"
	"github.com/ghuser/packstack/services/inventory/domain/models"
)

// ValidateName enforces business rules for ItemName beyond the structural
// constraints enforced by the ItemName constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - Must not be only whitespace characters
func ValidateName(name models.ItemName) error {
	s := name.String()

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: must not be only whitespace", domain.ErrInvalidItemName)
	}

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("%w: must not have leading or trailing whitespace", domain.ErrInvalidItemName)
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: must not contain control characters", domain.ErrInvalidItemName)
		}
	}

	return nil
}

// ValidateItem performs cross-field checks on an Item before it is persisted,
// whether newly built via models.NewItem or edited in place.
func ValidateItem(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if err := ValidateName(item.Name); err != nil {
		return err
	}

	if item.OwnerID == uuid.Nil {
		return fmt.Errorf("owner_id must be set")
	}

	if !item.Unit.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidUnit, item.Unit.String())
	}

	if negative(item.Weight) || negative(item.Price) {
		return fmt.Errorf("%w: weight and price must not be negative", domain.ErrInvalidItem)
	}

	if !item.IsFood {
		return nil
	}

	if item.FoodType != "" {
		if _, err := models.ParseFoodType(string(item.FoodType)); err != nil {
			return err
		}
	}

	if negative(item.CaloriesPerServing) {
		return fmt.Errorf("%w: calories_per_serving must not be negative", domain.ErrInvalidItem)
	}
	if n := item.Nutrition; n != nil && (negative(n.Protein) || negative(n.Carbs) || negative(n.Fat)) {
		return fmt.Errorf("%w: nutrition values must not be negative", domain.ErrInvalidItem)
	}
	if item.PreparationMinutes != nil && *item.PreparationMinutes < 0 {
		return fmt.Errorf("%w: preparation_minutes must not be negative", domain.ErrInvalidItem)
	}

	return nil
}

func negative(v *float64) bool {
	return v != nil && *v < 0
}
