package services

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/ghuser/packstack/pkg/config"
	"github.com/ghuser/packstack/pkg/logger"
	itemdomain "github.com/ghuser/packstack/services/inventory/domain"
	"github.com/ghuser/packstack/services/inventory/domain/models"
	"github.com/ghuser/packstack/services/inventory/domain/repositories"
)

// memRepo is an in-memory ItemRepository.
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*models.Item
	err    error
}

func newMemRepo() *memRepo {
	return &memRepo{items: make(map[int64]*models.Item)}
}

func (r *memRepo) Save(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.items {
		if existing.OwnerID == item.OwnerID && existing.Name == item.Name {
			return itemdomain.ErrItemAlreadyExists
		}
	}
	r.nextID++
	item.ID = r.nextID
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, ownerID uuid.UUID, id int64) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return nil, itemdomain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *memRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	all, err := r.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	total := len(all)
	start := min(opts.Offset, total)
	end := min(start+opts.Limit, total)
	return all[start:end], total, nil
}

func (r *memRepo) ListByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*models.Item
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			cp := *item
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *models.Item) int { return int(a.ID - b.ID) })
	return out, nil
}

func (r *memRepo) Update(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[item.ID]
	if !ok || existing.OwnerID != item.OwnerID {
		return itemdomain.ErrItemNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memRepo) Delete(_ context.Context, ownerID uuid.UUID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return itemdomain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memRepo) Exists(_ context.Context, ownerID uuid.UUID, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	return ok && item.OwnerID == ownerID, nil
}

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func ptr[T any](v T) *T { return &v }
