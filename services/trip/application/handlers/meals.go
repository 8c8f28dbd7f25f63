package handlers

import (
	"net/http"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	pkgvalidator "github.com/ghuser/packstack/pkg/validator"
	appsvcs "github.com/ghuser/packstack/services/trip/application/services"
)

// MealsHandler handles POST and DELETE /trip/plan/{id}/meals requests.
type MealsHandler struct {
	svc *appsvcs.Services
}

func NewMealsHandler(svc *appsvcs.Services) *MealsHandler {
	return &MealsHandler{svc: svc}
}

// Add places a food item into a meal slot. Repeating the call is a no-op.
//
//	@Summary	Add food to meal slot
//	@Tags		trip
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"Plan ID"
//	@Param		request	body		MealRequest	true	"Day, slot and item"
//	@Success	200		{object}	PlanResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/trip/plan/{id}/meals [post]
func (h *MealsHandler) Add(w http.ResponseWriter, r *http.Request) {
	owner, planID, ok := planScope(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[MealRequest](w, r)
	if !ok {
		return
	}

	plan, err := h.svc.Plan.AddMeal(r.Context(), owner, planID, req.change())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newPlanResponse(plan))
}

// Remove takes an item out of a meal slot.
//
//	@Summary	Remove food from meal slot
//	@Tags		trip
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"Plan ID"
//	@Param		request	body		MealRequest	true	"Day, slot and item"
//	@Success	200		{object}	PlanResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/trip/plan/{id}/meals [delete]
func (h *MealsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	owner, planID, ok := planScope(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[MealRequest](w, r)
	if !ok {
		return
	}

	plan, err := h.svc.Plan.RemoveMeal(r.Context(), owner, planID, req.change())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newPlanResponse(plan))
}
