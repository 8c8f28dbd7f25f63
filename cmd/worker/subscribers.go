package main

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/packstack/pkg/app"
	"github.com/ghuser/packstack/pkg/cache"
	"github.com/ghuser/packstack/pkg/events"
	"github.com/ghuser/packstack/pkg/logger"
	itemsvcs "github.com/ghuser/packstack/services/inventory/application/services"
	itemEvents "github.com/ghuser/packstack/services/inventory/domain/events"
)

// registerSubscribers attaches every domain event handler to the bus.
// Handlers start consuming once EventBus.Run is called.
func registerSubscribers(a *app.Application) {
	itemCache := cache.NewItemCache(a.Redis)
	a.EventBus.Handle("inventory.warm_cache", itemEvents.TopicItemCreated, handleItemCreated(itemCache, a.Logger))
	a.EventBus.Handle("inventory.evict_cache", itemEvents.TopicItemDeleted, handleItemDeleted(itemCache, a.Logger))

	a.Logger.Info("event handlers registered",
		"topics", []string{itemEvents.TopicItemCreated, itemEvents.TopicItemDeleted})
}

// handleItemCreated warms the read-model cache with the item snapshot.
func handleItemCreated(c *cache.ItemCache, log logger.Logger) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.DecodeJSON[itemEvents.ItemCreatedEvent](msg)
		if err != nil {
			return err
		}

		// Best-effort: a cold cache only costs a database read.
		if err := itemsvcs.WarmCache(ctx, c, evt.Item); err != nil {
			log.WarnContext(ctx, "cache warm failed for item.created", "item_id", evt.Item.ID, "error", err)
			return nil
		}
		log.InfoContext(ctx, "cache warmed", "item_id", evt.Item.ID, "owner_id", evt.Item.OwnerID)
		return nil
	}
}

// handleItemDeleted evicts the item so readers cannot see a deleted row.
// Eviction failures are returned so the bus retries them.
func handleItemDeleted(c *cache.ItemCache, log logger.Logger) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.DecodeJSON[itemEvents.ItemDeletedEvent](msg)
		if err != nil {
			return err
		}
		if err := c.Delete(ctx, evt.OwnerID, evt.ItemID); err != nil {
			return fmt.Errorf("evict item %d: %w", evt.ItemID, err)
		}
		log.InfoContext(ctx, "cache evicted", "item_id", evt.ItemID, "owner_id", evt.OwnerID)
		return nil
	}
}
