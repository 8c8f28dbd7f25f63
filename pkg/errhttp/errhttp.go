// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ghuser/packstack/pkg/httpx"
	catalogdomain "github.com/ghuser/packstack/services/catalog/domain"
	itemdomain "github.com/ghuser/packstack/services/inventory/domain"
	recdomain "github.com/ghuser/packstack/services/recommendation/domain"
	tripdomain "github.com/ghuser/packstack/services/trip/domain"
)

var hideInternal atomic.Bool

// HideInternalErrors replaces 5xx messages with the generic status text.
// cmd/api enables it in production.
func HideInternalErrors(hide bool) {
	hideInternal.Store(hide)
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, hideInternal.Load()))
}

// StatusFor returns the HTTP status WriteError would use for err.
func StatusFor(err error) int {
	return mapErrorToStatus(err)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound),
		errors.Is(err, tripdomain.ErrMealPlanNotFound),
		errors.Is(err, catalogdomain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, itemdomain.ErrItemAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, itemdomain.ErrInvalidSortCriterion),
		errors.Is(err, catalogdomain.ErrUnknownSource):
		return http.StatusBadRequest // 400
	case errors.Is(err, itemdomain.ErrInvalidItemName),
		errors.Is(err, itemdomain.ErrInvalidItem),
		errors.Is(err, itemdomain.ErrInvalidUnit),
		errors.Is(err, itemdomain.ErrInvalidFoodType),
		errors.Is(err, itemdomain.ErrInvalidDate),
		errors.Is(err, itemdomain.ErrInvalidDateRange),
		errors.Is(err, itemdomain.ErrDayNotInPlan),
		errors.Is(err, itemdomain.ErrInvalidMealSlot),
		errors.Is(err, tripdomain.ErrInvalidPlanName),
		errors.Is(err, tripdomain.ErrNotFood):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, catalogdomain.ErrUpstream),
		errors.Is(err, recdomain.ErrInvalidRecommendation),
		errors.Is(err, recdomain.ErrRecommenderUnavailable):
		return http.StatusBadGateway // 502
	case errors.Is(err, catalogdomain.ErrCatalogNotConfigured),
		errors.Is(err, recdomain.ErrRecommenderNotConfigured):
		return http.StatusServiceUnavailable // 503
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout // 504
	default:
		return http.StatusInternalServerError // 500
	}
}
