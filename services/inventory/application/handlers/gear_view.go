package handlers

import (
	"net/http"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	appsvcs "github.com/ghuser/packstack/services/inventory/application/services"
)

// GearViewHandler handles GET /items/gear requests.
type GearViewHandler struct {
	svc *appsvcs.Services
}

func NewGearViewHandler(svc *appsvcs.Services) *GearViewHandler {
	return &GearViewHandler{svc: svc}
}

// Execute returns the gear inventory filtered, sorted and grouped by category.
//
//	@Summary		Gear view
//	@Description	Category tabs always list every category, regardless of the category filter.
//	@Tags			views
//	@Produce		json
//	@Param			search		query		string	false	"Substring of name, notes or brand"
//	@Param			category	query		string	false	"Category tab; 'all' or empty for every category"
//	@Param			sort		query		string	false	"name | weight-asc | weight-desc | price-asc | price-desc"
//	@Success		200			{object}	GearViewResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/items/gear [get]
func (h *GearViewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	view, err := h.svc.Item.GearView(r.Context(), owner, appsvcs.GearQuery{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newGearViewResponse(view))
}
