package workflows

import (
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
)

// Register adds the recommendation workflow and activity to a worker.
func Register(r worker.Registry, acts *Activities) {
	r.RegisterWorkflowWithOptions(GearRecommendationWorkflow, workflow.RegisterOptions{Name: GearRecommendationWorkflowName})
	r.RegisterActivityWithOptions(acts.GenerateRecommendation, activity.RegisterOptions{Name: GenerateRecommendationActivityName})
}
