package errhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogdomain "github.com/ghuser/packstack/services/catalog/domain"
	itemdomain "github.com/ghuser/packstack/services/inventory/domain"
	recdomain "github.com/ghuser/packstack/services/recommendation/domain"
	tripdomain "github.com/ghuser/packstack/services/trip/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", itemdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrItemAlreadyExists", itemdomain.ErrItemAlreadyExists, http.StatusConflict},
		{"ErrInvalidItemName", itemdomain.ErrInvalidItemName, http.StatusUnprocessableEntity},
		{"ErrInvalidItem", itemdomain.ErrInvalidItem, http.StatusUnprocessableEntity},
		{"ErrInvalidUnit", itemdomain.ErrInvalidUnit, http.StatusUnprocessableEntity},
		{"ErrInvalidFoodType", itemdomain.ErrInvalidFoodType, http.StatusUnprocessableEntity},
		{"ErrInvalidDate", itemdomain.ErrInvalidDate, http.StatusUnprocessableEntity},
		{"ErrInvalidSortCriterion", itemdomain.ErrInvalidSortCriterion, http.StatusBadRequest},
		{"ErrInvalidDateRange", itemdomain.ErrInvalidDateRange, http.StatusUnprocessableEntity},
		{"ErrDayNotInPlan", itemdomain.ErrDayNotInPlan, http.StatusUnprocessableEntity},
		{"ErrInvalidMealSlot", itemdomain.ErrInvalidMealSlot, http.StatusUnprocessableEntity},
		{"ErrMealPlanNotFound", tripdomain.ErrMealPlanNotFound, http.StatusNotFound},
		{"ErrInvalidPlanName", tripdomain.ErrInvalidPlanName, http.StatusUnprocessableEntity},
		{"ErrNotFood", tripdomain.ErrNotFood, http.StatusUnprocessableEntity},
		{"ErrUnknownSource", catalogdomain.ErrUnknownSource, http.StatusBadRequest},
		{"ErrProductNotFound", catalogdomain.ErrProductNotFound, http.StatusNotFound},
		{"ErrCatalogNotConfigured", catalogdomain.ErrCatalogNotConfigured, http.StatusServiceUnavailable},
		{"ErrUpstream", catalogdomain.ErrUpstream, http.StatusBadGateway},
		{"ErrRecommenderNotConfigured", recdomain.ErrRecommenderNotConfigured, http.StatusServiceUnavailable},
		{"ErrInvalidRecommendation", recdomain.ErrInvalidRecommendation, http.StatusBadGateway},
		{"ErrRecommenderUnavailable", recdomain.ErrRecommenderUnavailable, http.StatusBadGateway},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", itemdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidItemName", fmt.Errorf("%w: too long", itemdomain.ErrInvalidItemName), http.StatusUnprocessableEntity},
		{"upstream deadline", fmt.Errorf("llm: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, itemdomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != itemdomain.ErrItemNotFound.Error() {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestWriteError_HideInternal(t *testing.T) {
	HideInternalErrors(true)
	t.Cleanup(func() { HideInternalErrors(false) })

	w := httptest.NewRecorder()
	WriteError(w, errors.New("pq: connection refused on 10.0.0.3"))

	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("internal detail leaked: %q", body["error"])
	}

	w = httptest.NewRecorder()
	WriteError(w, itemdomain.ErrItemNotFound)
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != itemdomain.ErrItemNotFound.Error() {
		t.Fatalf("4xx message should stay visible, got %q", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, itemdomain.ErrItemNotFound)

	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("Content-Type = %q", ct)
	}
}
