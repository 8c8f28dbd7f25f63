package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/packstack/pkg/cache"
	"github.com/ghuser/packstack/pkg/logger"
	itemdomain "github.com/ghuser/packstack/services/inventory/domain"
	domainevents "github.com/ghuser/packstack/services/inventory/domain/events"
	"github.com/ghuser/packstack/services/inventory/domain/models"
	"github.com/ghuser/packstack/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/packstack/services/inventory/domain/services"
)

const cacheWarmTimeout = 2 * time.Second

// ItemAttributes carries the client-editable fields of an item as received on the wire.
// Units, food types and dates are parsed by the service so every entry point shares one set of rules.
type ItemAttributes struct {
	Name               string
	IsFood             bool
	Weight             *float64
	Unit               string
	Price              *float64
	Category           string
	Brand              string
	Notes              string
	ProductURL         string
	Consumable         bool
	Wishlist           bool
	FoodType           string
	CaloriesPerServing *float64
	ExpirationDate     string
	Protein            *float64
	Carbs              *float64
	Fat                *float64
	DietaryTags        []string
	PreparationMinutes *int
}

// ItemService orchestrates the item lifecycle and the derived inventory views.
// Event publishing is handled by the repository layer (outbox pattern).
// Single-item reads are served from Redis cache when available.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
	log   logger.Logger
	now   func() time.Time
}

// NewItemService returns an ItemService wired with the given repository and cache.
// itemCache may be nil, in which case every read goes to the repository.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache, log logger.Logger) *ItemService {
	return &ItemService{repo: repo, cache: itemCache, log: log, now: time.Now}
}

// Create validates and persists an Item. The repository publishes ItemCreatedEvent.
func (s *ItemService) Create(ctx context.Context, ownerID uuid.UUID, attrs ItemAttributes) (*models.Item, error) {
	name, err := models.NewItemName(attrs.Name)
	if err != nil {
		return nil, err
	}

	item, err := models.NewItem(ownerID, name, attrs.IsFood)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	if err := applyAttributes(item, attrs); err != nil {
		return nil, err
	}

	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	s.log.InfoContext(ctx, "item created", "item_id", item.ID, "is_food", item.IsFood)
	return item, nil
}

// GetByID retrieves an Item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, ownerID, id)
		switch {
		case err == nil:
			var snap domainevents.ItemSnapshot
			if err := json.Unmarshal(cached.Payload, &snap); err == nil {
				return snap.Item(), nil
			}
			s.log.WarnContext(ctx, "discarding undecodable cache entry", "item_id", id)
		case !errors.Is(err, redis.Nil):
			s.log.WarnContext(ctx, "item cache read failed, falling back to postgres", "item_id", id, "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go s.warm(context.WithoutCancel(ctx), item)
	}

	return item, nil
}

// List returns a paginated slice of items for the owner plus total count.
func (s *ItemService) List(ctx context.Context, ownerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	items, total, err := s.repo.FindByOwnerID(ctx, ownerID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// Snapshot returns the owner's full inventory. Callers own the returned slice
// and the aggregation engine never mutates it.
func (s *ItemService) Snapshot(ctx context.Context, ownerID uuid.UUID) ([]*models.Item, error) {
	items, err := s.repo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("snapshot inventory: %w", err)
	}
	return items, nil
}

// Update replaces every editable field of an existing item.
func (s *ItemService) Update(ctx context.Context, ownerID uuid.UUID, id int64, attrs ItemAttributes) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	name, err := models.NewItemName(attrs.Name)
	if err != nil {
		return nil, err
	}
	item.Name = name
	item.IsFood = attrs.IsFood

	if err := applyAttributes(item, attrs); err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, err
	}

	item.Touch()
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.evict(ctx, ownerID, id)
	s.log.InfoContext(ctx, "item updated", "item_id", id)
	return item, nil
}

// Delete removes an item by ID scoped to the given owner.
// Returns ErrItemNotFound if no matching item exists.
func (s *ItemService) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	exists, err := s.repo.Exists(ctx, ownerID, id)
	if err != nil {
		return fmt.Errorf("check item: %w", err)
	}
	if !exists {
		return itemdomain.ErrItemNotFound
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.evict(ctx, ownerID, id)
	s.log.InfoContext(ctx, "item deleted", "item_id", id)
	return nil
}

func (s *ItemService) warm(ctx context.Context, item *models.Item) {
	ctx, cancel := context.WithTimeout(ctx, cacheWarmTimeout)
	defer cancel()
	if err := WarmCache(ctx, s.cache, domainevents.SnapshotOf(item)); err != nil {
		s.log.WarnContext(ctx, "item cache warm failed", "item_id", item.ID, "error", err)
	}
}

func (s *ItemService) evict(ctx context.Context, ownerID uuid.UUID, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.WithoutCancel(ctx), ownerID, id); err != nil {
		s.log.WarnContext(ctx, "item cache evict failed", "item_id", id, "error", err)
	}
}

// WarmCache stores snap in the item cache. Shared with the worker's item.created handler.
func WarmCache(ctx context.Context, c *pkgcache.ItemCache, snap domainevents.ItemSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return c.Set(ctx, &pkgcache.CachedItem{
		ID:        snap.ID,
		OwnerID:   snap.OwnerID,
		Payload:   payload,
		UpdatedAt: snap.UpdatedAt,
	})
}

// applyAttributes parses and copies attrs onto item. Food fields are dropped for gear.
func applyAttributes(item *models.Item, attrs ItemAttributes) error {
	unit, err := models.ParseUnit(attrs.Unit)
	if err != nil {
		return err
	}

	item.Weight = attrs.Weight
	item.Unit = unit
	item.Price = attrs.Price
	item.Category = attrs.Category
	item.Brand = attrs.Brand
	item.Notes = attrs.Notes
	item.ProductURL = attrs.ProductURL
	item.Consumable = attrs.Consumable
	item.Wishlist = attrs.Wishlist

	if !item.IsFood {
		item.ClearFoodFields()
		return nil
	}

	ft, err := models.ParseFoodType(attrs.FoodType)
	if err != nil {
		return err
	}
	item.FoodType = ft
	item.CaloriesPerServing = attrs.CaloriesPerServing
	item.PreparationMinutes = attrs.PreparationMinutes
	item.DietaryTags = attrs.DietaryTags

	item.ExpirationDate = nil
	if attrs.ExpirationDate != "" {
		d, err := models.ParseDate(attrs.ExpirationDate)
		if err != nil {
			return err
		}
		item.ExpirationDate = &d
	}

	item.Nutrition = nil
	if attrs.Protein != nil || attrs.Carbs != nil || attrs.Fat != nil {
		item.Nutrition = &models.NutritionInfo{Protein: attrs.Protein, Carbs: attrs.Carbs, Fat: attrs.Fat}
	}
	return nil
}
