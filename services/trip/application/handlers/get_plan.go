package handlers

import (
	"net/http"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	appsvcs "github.com/ghuser/packstack/services/trip/application/services"
)

// GetPlanHandler handles GET /trip/plan/{id} requests.
type GetPlanHandler struct {
	svc *appsvcs.Services
}

func NewGetPlanHandler(svc *appsvcs.Services) *GetPlanHandler {
	return &GetPlanHandler{svc: svc}
}

// Execute returns a draft meal plan.
//
//	@Summary	Get meal plan
//	@Tags		trip
//	@Produce	json
//	@Param		id	path		string	true	"Plan ID"
//	@Success	200	{object}	PlanResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/trip/plan/{id} [get]
func (h *GetPlanHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, planID, ok := planScope(w, r)
	if !ok {
		return
	}
	plan, err := h.svc.Plan.Get(r.Context(), owner, planID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newPlanResponse(plan))
}
