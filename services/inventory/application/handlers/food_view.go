package handlers

import (
	"net/http"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	appsvcs "github.com/ghuser/packstack/services/inventory/application/services"
)

// FoodViewHandler handles GET /items/food requests.
type FoodViewHandler struct {
	svc *appsvcs.Services
}

func NewFoodViewHandler(svc *appsvcs.Services) *FoodViewHandler {
	return &FoodViewHandler{svc: svc}
}

// Execute returns the food inventory grouped by food type with nutrition totals.
//
//	@Summary	Food view
//	@Tags		views
//	@Produce	json
//	@Param		search	query		string	false	"Substring of name, notes or brand"
//	@Param		tab		query		string	false	"all | expired | a food type"
//	@Param		tag		query		string	false	"Dietary tag"
//	@Param		sort	query		string	false	"name | weight-asc | weight-desc | price-asc | price-desc"
//	@Success	200		{object}	FoodViewResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/items/food [get]
func (h *FoodViewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	view, err := h.svc.Item.FoodView(r.Context(), owner, appsvcs.FoodQuery{
		Search: q.Get("search"),
		Tab:    q.Get("tab"),
		Tag:    q.Get("tag"),
		Sort:   q.Get("sort"),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newFoodViewResponse(view))
}
