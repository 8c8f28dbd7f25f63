package services

import (
	"time"

	"github.com/ghuser/packstack/pkg/app"
	"github.com/ghuser/packstack/services/recommendation/application/workflows"
	"github.com/ghuser/packstack/services/recommendation/infrastructure/llm"
)

// workflowTimeout covers every activity attempt plus backoff.
const workflowTimeout = 5 * time.Minute

// Services is the application-layer service container for recommendations.
type Services struct {
	Recommendation *RecommendationService
}

// NewActivities builds the activity dependencies from config. The LLM is nil
// when no backend is configured, which makes every request fail with
// domain.ErrRecommenderNotConfigured.
func NewActivities(a *app.Application) *workflows.Activities {
	cfg := a.Config
	if !cfg.LLMEnabled() {
		return &workflows.Activities{}
	}
	return &workflows.Activities{LLM: llm.NewClient(llm.Config{
		BaseURL: cfg.LLMBaseURL,
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	})}
}

// New wires the recommendation service. Requests run as Temporal workflows
// when a client is configured and in-process otherwise.
func New(a *app.Application, items ItemSource) *Services {
	log := a.Logger.With("service", "recommendation")

	var runner Runner = InlineRunner{Activities: NewActivities(a)}
	if a.TemporalClient != nil {
		runner = TemporalRunner{
			Client:    a.TemporalClient.Client,
			TaskQueue: a.Config.TemporalTaskQueue,
			Timeout:   workflowTimeout,
		}
		log.Info("recommendations run on temporal", "task_queue", a.Config.TemporalTaskQueue)
	}

	return &Services{
		Recommendation: NewRecommendationService(items, runner, log),
	}
}
