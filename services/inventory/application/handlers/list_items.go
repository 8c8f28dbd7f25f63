package handlers

import (
	"net/http"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	appsvcs "github.com/ghuser/packstack/services/inventory/application/services"
	"github.com/ghuser/packstack/services/inventory/domain/repositories"
)

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute returns a page of the caller's items, newest first.
//
//	@Summary	List items
//	@Tags		items
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (max 200)"	default(50)
//	@Param		offset	query		int	false	"Items to skip"			default(0)
//	@Success	200		{object}	ListItemsResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	limit, ok := queryInt(r, "limit", defaultPageLimit)
	if !ok || limit == 0 || limit > maxPageLimit {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "limit must be between 1 and 200"})
		return
	}
	offset, ok := queryInt(r, "offset", 0)
	if !ok {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "offset must be a non-negative integer"})
		return
	}

	items, total, err := h.svc.Item.List(r.Context(), owner, repositories.QueryOpts{Limit: limit, Offset: offset})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListItemsResponse{
		Items:  itemResponses(items),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}
