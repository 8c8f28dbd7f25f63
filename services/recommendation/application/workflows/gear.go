// Package workflows runs gear recommendations as Temporal workflows.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ghuser/packstack/services/recommendation/domain"
	"github.com/ghuser/packstack/services/recommendation/domain/models"
	"github.com/ghuser/packstack/services/recommendation/domain/services"
)

const (
	// GearRecommendationWorkflowName is the registered workflow type.
	GearRecommendationWorkflowName = "GearRecommendationWorkflow"
	// GenerateRecommendationActivityName is the registered activity type.
	GenerateRecommendationActivityName = "GenerateRecommendation"

	errTypeNotConfigured         = "RecommenderNotConfigured"
	errTypeInvalidRecommendation = "InvalidRecommendation"
	errTypeUnavailable           = "RecommenderUnavailable"
)

// GenerateInput is the workflow and activity argument.
type GenerateInput struct {
	Trip      models.TripRequest      `json:"trip"`
	Inventory models.InventorySummary `json:"inventory"`
}

// Completer sends a prompt to a language model.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Activities holds activity dependencies. Register with worker.RegisterActivity(&Activities{...}).
type Activities struct {
	LLM Completer
}

// Generate builds the prompt, calls the model and validates the reply.
// Errors are the domain sentinels.
func (a *Activities) Generate(ctx context.Context, in GenerateInput) (*models.Recommendation, error) {
	if a.LLM == nil {
		return nil, domain.ErrRecommenderNotConfigured
	}
	system, user := services.BuildPrompt(in.Trip, in.Inventory)
	reply, err := a.LLM.Complete(ctx, system, user)
	if err != nil {
		return nil, err
	}
	return models.ParseRecommendation(reply)
}

// GenerateRecommendation is the activity. Domain errors become typed
// application errors so they survive serialization; a missing backend is
// not retried.
func (a *Activities) GenerateRecommendation(ctx context.Context, in GenerateInput) (*models.Recommendation, error) {
	rec, err := a.Generate(ctx, in)
	switch {
	case err == nil:
		return rec, nil
	case errors.Is(err, domain.ErrRecommenderNotConfigured):
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), errTypeNotConfigured, err)
	case errors.Is(err, domain.ErrInvalidRecommendation):
		return nil, temporal.NewApplicationErrorWithCause(err.Error(), errTypeInvalidRecommendation, err)
	default:
		return nil, temporal.NewApplicationErrorWithCause(err.Error(), errTypeUnavailable, err)
	}
}

// activityOptions retries model failures a few times; model replies vary
// between attempts, so invalid output is retried too.
var activityOptions = workflow.ActivityOptions{
	StartToCloseTimeout: 90 * time.Second,
	RetryPolicy: &temporal.RetryPolicy{
		InitialInterval:        2 * time.Second,
		BackoffCoefficient:     2,
		MaximumInterval:        30 * time.Second,
		MaximumAttempts:        3,
		NonRetryableErrorTypes: []string{errTypeNotConfigured},
	},
}

// GearRecommendationWorkflow runs the GenerateRecommendation activity.
func GearRecommendationWorkflow(ctx workflow.Context, in GenerateInput) (*models.Recommendation, error) {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var rec models.Recommendation
	if err := workflow.ExecuteActivity(ctx, GenerateRecommendationActivityName, in).Get(ctx, &rec); err != nil {
		return nil, err
	}
	workflow.GetLogger(ctx).Info("gear recommendation generated", "items", rec.ItemCount())
	return &rec, nil
}

// FromWorkflowError maps a failed workflow back onto the domain sentinels.
func FromWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) {
		switch appErr.Type() {
		case errTypeNotConfigured:
			return fmt.Errorf("%w: %s", domain.ErrRecommenderNotConfigured, appErr.Error())
		case errTypeInvalidRecommendation:
			return fmt.Errorf("%w: %s", domain.ErrInvalidRecommendation, appErr.Error())
		}
	}
	return fmt.Errorf("%w: %w", domain.ErrRecommenderUnavailable, err)
}
