package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	appsvcs "github.com/ghuser/packstack/services/catalog/application/services"
)

// ProductHandler handles GET /catalog/{source}/product/{id} requests.
type ProductHandler struct {
	svc *appsvcs.Services
}

func NewProductHandler(svc *appsvcs.Services) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Execute returns one product and an inventory item draft built from it.
//
//	@Summary	Get a catalog product
//	@Tags		catalog
//	@Produce	json
//	@Param		source	path		string	true	"amazon | walmart"
//	@Param		id		path		string	true	"ASIN or Walmart item id"
//	@Success	200		{object}	ProductDetailResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/catalog/{source}/product/{id} [get]
func (h *ProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Catalog.Product(r.Context(), chi.URLParam(r, "source"), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newProductDetailResponse(p))
}
