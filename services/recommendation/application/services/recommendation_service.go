package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"

	"github.com/ghuser/packstack/pkg/logger"
	invmodels "github.com/ghuser/packstack/services/inventory/domain/models"
	"github.com/ghuser/packstack/services/recommendation/application/workflows"
	"github.com/ghuser/packstack/services/recommendation/domain/models"
	domainsvcs "github.com/ghuser/packstack/services/recommendation/domain/services"
)

// ItemSource returns the owner's full inventory.
type ItemSource interface {
	Snapshot(ctx context.Context, ownerID uuid.UUID) ([]*invmodels.Item, error)
}

// Runner executes one recommendation request.
type Runner interface {
	Run(ctx context.Context, in workflows.GenerateInput) (*models.Recommendation, error)
}

// InlineRunner calls the activity code in-process.
type InlineRunner struct {
	Activities *workflows.Activities
}

func (r InlineRunner) Run(ctx context.Context, in workflows.GenerateInput) (*models.Recommendation, error) {
	return r.Activities.Generate(ctx, in)
}

// TemporalRunner starts GearRecommendationWorkflow and waits for its result.
type TemporalRunner struct {
	Client    client.Client
	TaskQueue string
	Timeout   time.Duration
}

func (r TemporalRunner) Run(ctx context.Context, in workflows.GenerateInput) (*models.Recommendation, error) {
	run, err := r.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:                       "gear-recommendation-" + uuid.NewString(),
		TaskQueue:                r.TaskQueue,
		WorkflowExecutionTimeout: r.Timeout,
	}, workflows.GearRecommendationWorkflowName, in)
	if err != nil {
		return nil, workflows.FromWorkflowError(fmt.Errorf("start workflow: %w", err))
	}

	var rec models.Recommendation
	if err := run.Get(ctx, &rec); err != nil {
		return nil, workflows.FromWorkflowError(err)
	}
	return &rec, nil
}

// Result is a recommendation and the inventory summary it was built from.
type Result struct {
	Recommendation *models.Recommendation
	Inventory      models.InventorySummary
}

// RecommendationService produces gear recommendations for an owner's trip.
type RecommendationService struct {
	items  ItemSource
	runner Runner
	log    logger.Logger
}

func NewRecommendationService(items ItemSource, runner Runner, log logger.Logger) *RecommendationService {
	return &RecommendationService{items: items, runner: runner, log: log}
}

// Recommend summarizes the owner's inventory and asks the model for gear to add.
func (s *RecommendationService) Recommend(ctx context.Context, ownerID uuid.UUID, trip models.TripRequest) (*Result, error) {
	items, err := s.items.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	summary := domainsvcs.SummarizeInventory(items)

	start := time.Now()
	rec, err := s.runner.Run(ctx, workflows.GenerateInput{Trip: trip, Inventory: summary})
	if err != nil {
		s.log.WarnContext(ctx, "gear recommendation failed", "error", err)
		return nil, err
	}

	s.log.InfoContext(ctx, "gear recommendation generated",
		"trip_type", trip.TripType,
		"items", rec.ItemCount(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &Result{Recommendation: rec, Inventory: summary}, nil
}
