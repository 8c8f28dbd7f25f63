package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/packstack/pkg/auth"
	"github.com/ghuser/packstack/pkg/httpx"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// ownerID writes 401 and returns false when the request carries no authenticated owner.
func ownerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := auth.OwnerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return uuid.Nil, false
	}
	return id, true
}

// itemID parses the {id} path parameter, writing 400 when it is not a positive integer.
func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "item id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// queryInt reads a non-negative integer query parameter, falling back to def when absent.
func queryInt(r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
