package handlers

import (
	"net/http"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	appsvcs "github.com/ghuser/packstack/services/trip/application/services"
)

// NutritionHandler handles GET /trip/plan/{id}/nutrition requests.
type NutritionHandler struct {
	svc *appsvcs.Services
}

func NewNutritionHandler(svc *appsvcs.Services) *NutritionHandler {
	return &NutritionHandler{svc: svc}
}

// Execute returns per-day nutrition. Items deleted from the inventory are skipped.
//
//	@Summary	Meal plan nutrition
//	@Tags		trip
//	@Produce	json
//	@Param		id		path		string	true	"Plan ID"
//	@Param		date	query		string	false	"Restrict to one day (YYYY-MM-DD)"
//	@Success	200		{object}	NutritionResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/trip/plan/{id}/nutrition [get]
func (h *NutritionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, planID, ok := planScope(w, r)
	if !ok {
		return
	}
	days, err := h.svc.Plan.Nutrition(r.Context(), owner, planID, r.URL.Query().Get("date"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newNutritionResponse(days))
}
