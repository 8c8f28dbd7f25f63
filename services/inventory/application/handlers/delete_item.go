package handlers

import (
	"net/http"

	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/httpx"
	appsvcs "github.com/ghuser/packstack/services/inventory/application/services"
)

// DeleteItemHandler handles DELETE /item/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item. Meal plans that still reference it simply skip it.
//
//	@Summary	Delete item
//	@Tags		items
//	@Param		id	path	int	true	"Item ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/item/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Item.Delete(r.Context(), owner, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}
