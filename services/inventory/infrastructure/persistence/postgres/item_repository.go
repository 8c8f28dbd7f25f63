package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/packstack/pkg/database"
	"github.com/ghuser/packstack/pkg/events"
	itemdomain "github.com/ghuser/packstack/services/inventory/domain"
	domainevents "github.com/ghuser/packstack/services/inventory/domain/events"
	"github.com/ghuser/packstack/services/inventory/domain/models"
	"github.com/ghuser/packstack/services/inventory/domain/repositories"
	"github.com/ghuser/packstack/services/inventory/infrastructure/persistence/postgres/db"
)

const (
	uniqueViolation = "23505"
	eventVersion    = 1
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. The bus publishes item events in the same transaction as the write.
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// Save inserts a new Item, assigns its ID, and publishes an ItemCreatedEvent within the same transaction.
// Returns ErrItemAlreadyExists on unique constraint violations.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	params, err := insertParams(item)
	if err != nil {
		return err
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := db.New(tx).InsertItem(ctx, params)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %q", itemdomain.ErrItemAlreadyExists, item.Name.String())
			}
			return fmt.Errorf("insert item: %w", err)
		}
		item.ID = id

		if r.bus == nil {
			return nil
		}
		evt := domainevents.ItemCreatedEvent{
			EventID:    uuid.New(),
			Version:    eventVersion,
			Item:       domainevents.SnapshotOf(item),
			OccurredAt: item.CreatedAt,
		}
		if err := r.bus.PublishTx(ctx, tx, domainevents.TopicItemCreated, evt.EventID, eventVersion, evt); err != nil {
			return fmt.Errorf("publish item created: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an Item by ID scoped to the given owner. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*models.Item, error) {
	row, err := db.New(r.db.DB()).GetItemByID(ctx, db.GetItemByIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return rowToItem(row)
}

// FindByOwnerID retrieves a paginated list of items and total count for the given owner.
func (r *ItemRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	q := db.New(r.db.DB())

	rows, err := q.FindItemsByOwnerID(ctx, db.FindItemsByOwnerIDParams{
		OwnerID: ownerID,
		Limit:   int32(opts.Limit),  //nolint:gosec // bounded by request validation
		Offset:  int32(opts.Offset), //nolint:gosec
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query items: %w", err)
	}

	total, err := q.CountItemsByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	items, err := rowsToItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

// ListByOwnerID returns every item the owner has, ordered by ID.
func (r *ItemRepository) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Item, error) {
	rows, err := db.New(r.db.DB()).ListItemsByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return rowsToItems(rows)
}

// Update persists all mutable fields of an existing Item.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	ins, err := insertParams(item)
	if err != nil {
		return err
	}

	n, err := db.New(r.db.DB()).UpdateItem(ctx, db.UpdateItemParams{
		ID:                 item.ID,
		OwnerID:            item.OwnerID,
		Name:               ins.Name,
		IsFood:             ins.IsFood,
		Weight:             ins.Weight,
		Unit:               ins.Unit,
		Price:              ins.Price,
		Category:           ins.Category,
		Brand:              ins.Brand,
		Notes:              ins.Notes,
		ProductUrl:         ins.ProductUrl,
		Consumable:         ins.Consumable,
		Wishlist:           ins.Wishlist,
		FoodType:           ins.FoodType,
		CaloriesPerServing: ins.CaloriesPerServing,
		ExpirationDate:     ins.ExpirationDate,
		Protein:            ins.Protein,
		Carbs:              ins.Carbs,
		Fat:                ins.Fat,
		DietaryTags:        ins.DietaryTags,
		PreparationMinutes: ins.PreparationMinutes,
		UpdatedAt:          ins.UpdatedAt,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", itemdomain.ErrItemAlreadyExists, item.Name.String())
		}
		return fmt.Errorf("update item: %w", err)
	}
	if n == 0 {
		return itemdomain.ErrItemNotFound
	}
	return nil
}

// Delete removes an item by ID scoped to the given owner and publishes an ItemDeletedEvent.
func (r *ItemRepository) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteItem(ctx, db.DeleteItemParams{ID: id, OwnerID: ownerID})
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if n == 0 {
			return itemdomain.ErrItemNotFound
		}

		if r.bus == nil {
			return nil
		}
		evt := domainevents.ItemDeletedEvent{
			EventID:    uuid.New(),
			Version:    eventVersion,
			ItemID:     id,
			OwnerID:    ownerID,
			OccurredAt: time.Now().UTC(),
		}
		if err := r.bus.PublishTx(ctx, tx, domainevents.TopicItemDeleted, evt.EventID, eventVersion, evt); err != nil {
			return fmt.Errorf("publish item deleted: %w", err)
		}
		return nil
	})
}

// Exists reports whether an item with the given ID exists for the given owner.
func (r *ItemRepository) Exists(ctx context.Context, ownerID uuid.UUID, id int64) (bool, error) {
	exists, err := db.New(r.db.DB()).ItemExists(ctx, db.ItemExistsParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return false, fmt.Errorf("check item exists: %w", err)
	}
	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// insertParams flattens an Item into column values. Food-only columns stay NULL for gear.
func insertParams(item *models.Item) (db.InsertItemParams, error) {
	p := db.InsertItemParams{
		OwnerID:     item.OwnerID,
		Name:        item.Name.String(),
		IsFood:      item.IsFood,
		Weight:      nullFloat(item.Weight),
		Unit:        item.Unit.String(),
		Price:       nullFloat(item.Price),
		Category:    item.Category,
		Brand:       item.Brand,
		Notes:       item.Notes,
		ProductUrl:  item.ProductURL,
		Consumable:  item.Consumable,
		Wishlist:    item.Wishlist,
		DietaryTags: []byte("[]"),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if !item.IsFood {
		return p, nil
	}

	p.FoodType = string(item.FoodType)
	p.CaloriesPerServing = nullFloat(item.CaloriesPerServing)
	if item.ExpirationDate != nil {
		p.ExpirationDate = sql.NullTime{Time: models.CalendarDay(*item.ExpirationDate), Valid: true}
	}
	if n := item.Nutrition; n != nil {
		p.Protein, p.Carbs, p.Fat = nullFloat(n.Protein), nullFloat(n.Carbs), nullFloat(n.Fat)
	}
	if len(item.DietaryTags) > 0 {
		tags, err := json.Marshal(item.DietaryTags)
		if err != nil {
			return p, fmt.Errorf("marshal dietary tags: %w", err)
		}
		p.DietaryTags = tags
	}
	if item.PreparationMinutes != nil {
		p.PreparationMinutes = sql.NullInt32{Int32: int32(*item.PreparationMinutes), Valid: true} //nolint:gosec
	}
	return p, nil
}

func rowsToItems(rows []db.InventoryItem) ([]*models.Item, error) {
	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		item, err := rowToItem(row)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

// rowToItem maps a db.InventoryItem to a domain models.Item.
func rowToItem(row db.InventoryItem) (*models.Item, error) {
	unit, err := models.ParseUnit(row.Unit)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", row.ID, err)
	}
	item := &models.Item{
		ID:                 row.ID,
		OwnerID:            row.OwnerID,
		Name:               models.ItemName(row.Name),
		IsFood:             row.IsFood,
		Weight:             floatPtr(row.Weight),
		Unit:               unit,
		Price:              floatPtr(row.Price),
		Category:           row.Category,
		Brand:              row.Brand,
		Notes:              row.Notes,
		ProductURL:         row.ProductUrl,
		Consumable:         row.Consumable,
		Wishlist:           row.Wishlist,
		FoodType:           models.FoodType(row.FoodType),
		CaloriesPerServing: floatPtr(row.CaloriesPerServing),
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
	if row.ExpirationDate.Valid {
		d := models.CalendarDay(row.ExpirationDate.Time)
		item.ExpirationDate = &d
	}
	if row.Protein.Valid || row.Carbs.Valid || row.Fat.Valid {
		item.Nutrition = &models.NutritionInfo{
			Protein: floatPtr(row.Protein),
			Carbs:   floatPtr(row.Carbs),
			Fat:     floatPtr(row.Fat),
		}
	}
	if len(row.DietaryTags) > 0 {
		if err := json.Unmarshal(row.DietaryTags, &item.DietaryTags); err != nil {
			return nil, fmt.Errorf("decode dietary tags of item %d: %w", row.ID, err)
		}
		if len(item.DietaryTags) == 0 {
			item.DietaryTags = nil
		}
	}
	if row.PreparationMinutes.Valid {
		m := int(row.PreparationMinutes.Int32)
		item.PreparationMinutes = &m
	}
	return item, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
