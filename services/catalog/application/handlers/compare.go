package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	pkgvalidator "github.com/ghuser/packstack/pkg/validator"
	appsvcs "github.com/ghuser/packstack/services/catalog/application/services"
	"github.com/ghuser/packstack/services/catalog/domain/repositories"
)

// CompareHandler handles GET /catalog/compare requests.
type CompareHandler struct {
	svc *appsvcs.Services
}

func NewCompareHandler(svc *appsvcs.Services) *CompareHandler {
	return &CompareHandler{svc: svc}
}

// Execute searches Amazon and Walmart for the same keywords and pairs matching listings by price.
//
//	@Summary	Compare prices across Amazon and Walmart
//	@Tags		catalog
//	@Produce	json
//	@Param		keywords	query		string	true	"Search keywords"
//	@Param		max_results	query		int		false	"1-25 per catalog, default 10"
//	@Success	200			{object}	CompareResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Failure	502			{object}	ErrorResponse
//	@Failure	503			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/catalog/compare [get]
func (h *CompareHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := CompareParams{Keywords: q.Get("keywords")}
	if raw := q.Get("max_results"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "max_results must be an integer"})
			return
		}
		params.MaxResults = n
	}
	if !pkgvalidator.Check(w, &params) {
		return
	}

	res, err := h.svc.Catalog.Compare(r.Context(), repositories.SearchQuery{
		Keywords:   params.Keywords,
		MaxResults: params.MaxResults,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newCompareResponse(res))
}
