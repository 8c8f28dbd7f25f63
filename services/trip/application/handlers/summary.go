package handlers

import (
	"net/http"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	pkgvalidator "github.com/ghuser/packstack/pkg/validator"
	appsvcs "github.com/ghuser/packstack/services/trip/application/services"
)

// SummaryHandler handles POST /trip/plan/{id}/summary requests.
type SummaryHandler struct {
	svc *appsvcs.Services
}

func NewSummaryHandler(svc *appsvcs.Services) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// Execute totals weight, cost and calories of the selected gear plus every planned food.
//
//	@Summary	Trip summary
//	@Tags		trip
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Plan ID"
//	@Param		request	body		SummaryRequest	true	"Selected gear"
//	@Success	200		{object}	SummaryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/trip/plan/{id}/summary [post]
func (h *SummaryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, planID, ok := planScope(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[SummaryRequest](w, r)
	if !ok {
		return
	}

	sum, err := h.svc.Plan.Summary(r.Context(), owner, planID, req.GearIDs)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newSummaryResponse(sum))
}
