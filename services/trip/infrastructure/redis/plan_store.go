// Package redis stores draft meal plans in Redis as JSON documents with a sliding TTL.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ghuser/packstack/pkg/cache"
	invmodels "github.com/ghuser/packstack/services/inventory/domain/models"
	tripdomain "github.com/ghuser/packstack/services/trip/domain"
	"github.com/ghuser/packstack/services/trip/domain/models"
)

const (
	planKeyPrefix    = "mealplan"
	maxUpdateRetries = 5
)

// PlanStore implements repositories.PlanStore on Redis.
// Key format: "packstack:mealplan:{ownerID}:{planID}". Every write refreshes the TTL.
type PlanStore struct {
	client *cache.RedisClient
	ttl    time.Duration
}

// NewPlanStore returns a PlanStore whose entries expire ttl after their last write.
func NewPlanStore(client *cache.RedisClient, ttl time.Duration) *PlanStore {
	return &PlanStore{client: client, ttl: ttl}
}

func (s *PlanStore) Save(ctx context.Context, plan *models.Plan) error {
	data, err := encodePlan(plan)
	if err != nil {
		return err
	}
	if err := s.client.Client().Set(ctx, s.key(plan.OwnerID, plan.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save meal plan: %w", err)
	}
	return nil
}

func (s *PlanStore) Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Plan, error) {
	raw, err := s.client.Client().Get(ctx, s.key(ownerID, id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, tripdomain.ErrMealPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get meal plan: %w", err)
	}
	return decodePlan(raw)
}

// Update applies fn under WATCH so concurrent edits of the same plan never lose writes.
func (s *PlanStore) Update(ctx context.Context, ownerID, id uuid.UUID, fn func(*models.Plan) error) (*models.Plan, error) {
	key := s.key(ownerID, id)
	var updated *models.Plan

	txf := func(tx *goredis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, goredis.Nil) {
			return tripdomain.ErrMealPlanNotFound
		}
		if err != nil {
			return fmt.Errorf("get meal plan: %w", err)
		}

		plan, err := decodePlan(raw)
		if err != nil {
			return err
		}
		if err := fn(plan); err != nil {
			return err
		}
		data, err := encodePlan(plan)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		updated = plan
		return err
	}

	for range maxUpdateRetries {
		err := s.client.Client().Watch(ctx, txf, key)
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, fmt.Errorf("update meal plan %s: gave up after %d conflicting writes", id, maxUpdateRetries)
}

func (s *PlanStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	n, err := s.client.Client().Del(ctx, s.key(ownerID, id)).Result()
	if err != nil {
		return fmt.Errorf("delete meal plan: %w", err)
	}
	if n == 0 {
		return tripdomain.ErrMealPlanNotFound
	}
	return nil
}

func (s *PlanStore) key(ownerID, id uuid.UUID) string {
	return cache.Key(planKeyPrefix, ownerID.String(), id.String())
}

type planRecord struct {
	ID        uuid.UUID   `json:"id"`
	OwnerID   uuid.UUID   `json:"owner_id"`
	Name      string      `json:"name,omitempty"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Days      []dayRecord `json:"days"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type dayRecord struct {
	Date  string             `json:"date"`
	Meals map[string][]int64 `json:"meals"`
}

func encodePlan(p *models.Plan) ([]byte, error) {
	rec := planRecord{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		StartDate: invmodels.FormatDate(p.Meals.StartDate),
		EndDate:   invmodels.FormatDate(p.Meals.EndDate),
		Days:      make([]dayRecord, 0, len(p.Meals.Days)),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for _, d := range p.Meals.Days {
		meals := make(map[string][]int64, len(d.Meals))
		for slot, ids := range d.Meals {
			meals[string(slot)] = ids
		}
		rec.Days = append(rec.Days, dayRecord{Date: invmodels.FormatDate(d.Date), Meals: meals})
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode meal plan: %w", err)
	}
	return data, nil
}

// decodePlan rebuilds the plan from its date range, so a stored document can never
// yield a plan with missing days or slots.
func decodePlan(data []byte) (*models.Plan, error) {
	var rec planRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode meal plan: %w", err)
	}

	start, err := invmodels.ParseDate(rec.StartDate)
	if err != nil {
		return nil, fmt.Errorf("decode meal plan start: %w", err)
	}
	end, err := invmodels.ParseDate(rec.EndDate)
	if err != nil {
		return nil, fmt.Errorf("decode meal plan end: %w", err)
	}
	meals, err := invmodels.NewMealPlan(start, end)
	if err != nil {
		return nil, fmt.Errorf("decode meal plan: %w", err)
	}

	for _, d := range rec.Days {
		date, err := invmodels.ParseDate(d.Date)
		if err != nil {
			return nil, fmt.Errorf("decode meal plan day: %w", err)
		}
		for slot, ids := range d.Meals {
			for _, id := range ids {
				if err := meals.AddItem(date, invmodels.MealSlot(slot), id); err != nil {
					return nil, fmt.Errorf("decode meal plan day %s: %w", d.Date, err)
				}
			}
		}
	}

	return &models.Plan{
		ID:        rec.ID,
		OwnerID:   rec.OwnerID,
		Name:      rec.Name,
		Meals:     meals,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}
