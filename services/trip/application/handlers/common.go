package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/packstack/pkg/auth"
	"github.com/ghuser/packstack/pkg/httpx"
)

// planScope resolves the authenticated owner and the {id} plan parameter.
func planScope(w http.ResponseWriter, r *http.Request) (owner, planID uuid.UUID, ok bool) {
	owner, err := auth.OwnerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return uuid.Nil, uuid.Nil, false
	}
	planID, err = uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "plan id must be a UUID"})
		return uuid.Nil, uuid.Nil, false
	}
	return owner, planID, true
}
