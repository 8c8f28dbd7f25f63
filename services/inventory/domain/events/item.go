package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/packstack/services/inventory/domain/models"
)

const (
	// TopicItemCreated is the Watermill topic published when an Item is created.
	TopicItemCreated = "item.created"

	// TopicItemDeleted is the Watermill topic published when an Item is removed.
	TopicItemDeleted = "item.deleted"
)

// ItemSnapshot is the serialized form of an Item carried by events and cache entries.
type ItemSnapshot struct {
	ID                 int64      `json:"id"`
	OwnerID            uuid.UUID  `json:"owner_id"`
	Name               string     `json:"name"`
	IsFood             bool       `json:"is_food"`
	Weight             *float64   `json:"weight,omitempty"`
	Unit               string     `json:"unit"`
	Price              *float64   `json:"price,omitempty"`
	Category           string     `json:"category,omitempty"`
	Brand              string     `json:"brand,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	ProductURL         string     `json:"product_url,omitempty"`
	Consumable         bool       `json:"consumable"`
	Wishlist           bool       `json:"wishlist"`
	FoodType           string     `json:"food_type,omitempty"`
	CaloriesPerServing *float64   `json:"calories_per_serving,omitempty"`
	ExpirationDate     *time.Time `json:"expiration_date,omitempty"`
	Protein            *float64   `json:"protein,omitempty"`
	Carbs              *float64   `json:"carbs,omitempty"`
	Fat                *float64   `json:"fat,omitempty"`
	DietaryTags        []string   `json:"dietary_tags,omitempty"`
	PreparationMinutes *int       `json:"preparation_minutes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// SnapshotOf captures item.
func SnapshotOf(item *models.Item) ItemSnapshot {
	s := ItemSnapshot{
		ID:                 item.ID,
		OwnerID:            item.OwnerID,
		Name:               item.Name.String(),
		IsFood:             item.IsFood,
		Weight:             item.Weight,
		Unit:               item.Unit.String(),
		Price:              item.Price,
		Category:           item.Category,
		Brand:              item.Brand,
		Notes:              item.Notes,
		ProductURL:         item.ProductURL,
		Consumable:         item.Consumable,
		Wishlist:           item.Wishlist,
		FoodType:           string(item.FoodType),
		CaloriesPerServing: item.CaloriesPerServing,
		ExpirationDate:     item.ExpirationDate,
		DietaryTags:        item.DietaryTags,
		PreparationMinutes: item.PreparationMinutes,
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}
	if n := item.Nutrition; n != nil {
		s.Protein, s.Carbs, s.Fat = n.Protein, n.Carbs, n.Fat
	}
	return s
}

// Item rebuilds the aggregate. Snapshots are only produced from valid items,
// so values are trusted rather than re-validated.
func (s ItemSnapshot) Item() *models.Item {
	item := &models.Item{
		ID:                 s.ID,
		OwnerID:            s.OwnerID,
		Name:               models.ItemName(s.Name),
		IsFood:             s.IsFood,
		Weight:             s.Weight,
		Unit:               models.Unit(s.Unit),
		Price:              s.Price,
		Category:           s.Category,
		Brand:              s.Brand,
		Notes:              s.Notes,
		ProductURL:         s.ProductURL,
		Consumable:         s.Consumable,
		Wishlist:           s.Wishlist,
		FoodType:           models.FoodType(s.FoodType),
		CaloriesPerServing: s.CaloriesPerServing,
		ExpirationDate:     s.ExpirationDate,
		DietaryTags:        s.DietaryTags,
		PreparationMinutes: s.PreparationMinutes,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
	if s.Protein != nil || s.Carbs != nil || s.Fat != nil {
		item.Nutrition = &models.NutritionInfo{Protein: s.Protein, Carbs: s.Carbs, Fat: s.Fat}
	}
	return item
}

// ItemCreatedEvent is published after a new Item is persisted.
// Consumers register with EventBus.Handle(name, events.TopicItemCreated, h).
type ItemCreatedEvent struct {
	EventID    uuid.UUID    `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int          `json:"version"`  // Schema version; increment on breaking changes
	Item       ItemSnapshot `json:"item"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// ItemDeletedEvent is published after an Item is removed.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
