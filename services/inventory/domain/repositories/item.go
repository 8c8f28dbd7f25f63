package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/packstack/services/inventory/domain/models"
)

// QueryOpts pages the flat item listing.
type QueryOpts struct {
	Limit  int
	Offset int
}

// ItemRepository stores one owner's inventory. Every method is scoped by
// ownerID; an id that belongs to another owner behaves as missing
// (ErrItemNotFound), never as forbidden.
type ItemRepository interface {
	// Save inserts item, assigning ID, CreatedAt and UpdatedAt, and
	// publishes item.created in the same transaction. A duplicate
	// name for the owner yields ErrItemAlreadyExists.
	Save(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*models.Item, error)

	// FindByOwnerID pages the inventory newest first and reports the
	// unpaged total.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID, opts QueryOpts) ([]*models.Item, int, error)

	// ListByOwnerID loads the whole inventory: the snapshot the gear and
	// food views, meal planning and recommendations aggregate over.
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Item, error)

	Update(ctx context.Context, item *models.Item) error

	// Delete removes the item and publishes item.deleted.
	Delete(ctx context.Context, ownerID uuid.UUID, id int64) error

	Exists(ctx context.Context, ownerID uuid.UUID, id int64) (bool, error)
}
