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

// SearchHandler handles GET /catalog/search requests.
type SearchHandler struct {
	svc *appsvcs.Services
}

func NewSearchHandler(svc *appsvcs.Services) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Execute searches one third-party catalog and returns normalized products.
//
//	@Summary	Search a product catalog
//	@Tags		catalog
//	@Produce	json
//	@Param		source		query		string	true	"amazon | walmart"
//	@Param		keywords	query		string	true	"Search keywords"
//	@Param		category	query		string	false	"Amazon SearchIndex or Walmart category id"
//	@Param		max_results	query		int		false	"1-25, default 10"
//	@Success	200			{object}	SearchResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Failure	502			{object}	ErrorResponse
//	@Failure	503			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/catalog/search [get]
func (h *SearchHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := SearchParams{
		Source:   q.Get("source"),
		Keywords: q.Get("keywords"),
		Category: q.Get("category"),
	}
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

	products, err := h.svc.Catalog.Search(r.Context(), params.Source, repositories.SearchQuery{
		Keywords:   params.Keywords,
		Category:   params.Category,
		MaxResults: params.MaxResults,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := SearchResponse{Source: params.Source, Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, newProductResponse(p))
	}
	resp.Count = len(resp.Products)
	httpx.JSON(w, http.StatusOK, resp)
}
