package handlers

import (
	"net/http"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	appsvcs "github.com/ghuser/packstack/services/trip/application/services"
)

// FoodsHandler handles GET /trip/plan/{id}/foods requests.
type FoodsHandler struct {
	svc *appsvcs.Services
}

func NewFoodsHandler(svc *appsvcs.Services) *FoodsHandler {
	return &FoodsHandler{svc: svc}
}

// Execute lists foods whose type matches the slot, plus general meals.
//
//	@Summary	Foods for a meal slot
//	@Tags		trip
//	@Produce	json
//	@Param		id		path	string	true	"Plan ID"
//	@Param		slot	query	string	true	"breakfast | lunch | dinner | snack"
//	@Success	200		{array}	FoodOption
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/trip/plan/{id}/foods [get]
func (h *FoodsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, planID, ok := planScope(w, r)
	if !ok {
		return
	}
	foods, err := h.svc.Plan.FoodsForSlot(r.Context(), owner, planID, r.URL.Query().Get("slot"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newFoodOptions(foods))
}
