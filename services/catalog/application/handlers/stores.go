package handlers

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	appsvcs "github.com/ghuser/packstack/services/catalog/application/services"
)

var zipCodePattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// StoresHandler handles GET /catalog/walmart/stores/{id} requests.
type StoresHandler struct {
	svc *appsvcs.Services
}

func NewStoresHandler(svc *appsvcs.Services) *StoresHandler {
	return &StoresHandler{svc: svc}
}

// Execute lists Walmart stores near a ZIP code that carry the item.
//
//	@Summary	Walmart store availability
//	@Tags		catalog
//	@Produce	json
//	@Param		id			path	string	true	"Walmart item id"
//	@Param		zip_code	query	string	true	"US ZIP code"
//	@Success	200			{array}	StoreResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	502			{object}	ErrorResponse
//	@Failure	503			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/catalog/walmart/stores/{id} [get]
func (h *StoresHandler) Execute(w http.ResponseWriter, r *http.Request) {
	zip := r.URL.Query().Get("zip_code")
	if !zipCodePattern.MatchString(zip) {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "zip_code must be a 5-digit US ZIP code"})
		return
	}
	stores, err := h.svc.Catalog.Stores(r.Context(), chi.URLParam(r, "id"), zip)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newStoreResponses(stores))
}
