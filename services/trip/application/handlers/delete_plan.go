package handlers

import (
	"net/http"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	appsvcs "github.com/ghuser/packstack/services/trip/application/services"
)

// DeletePlanHandler handles DELETE /trip/plan/{id} requests.
type DeletePlanHandler struct {
	svc *appsvcs.Services
}

func NewDeletePlanHandler(svc *appsvcs.Services) *DeletePlanHandler {
	return &DeletePlanHandler{svc: svc}
}

// Execute discards a draft meal plan.
//
//	@Summary	Discard meal plan
//	@Tags		trip
//	@Param		id	path	string	true	"Plan ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/trip/plan/{id} [delete]
func (h *DeletePlanHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, planID, ok := planScope(w, r)
	if !ok {
		return
	}
	if err := h.svc.Plan.Delete(r.Context(), owner, planID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}
