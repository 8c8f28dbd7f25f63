package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	invdomain "github.com/ghuser/packstack/services/inventory/domain"
	tripdomain "github.com/ghuser/packstack/services/trip/domain"
)

func TestNewPlan(t *testing.T) {
	now := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	start := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC)

	t.Run("seeds one day per date", func(t *testing.T) {
		p, err := NewPlan(uuid.New(), "  Sierra loop  ", start, end, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == uuid.Nil || p.Name != "Sierra loop" {
			t.Fatalf("unexpected plan: %+v", p)
		}
		if len(p.Meals.Days) != 3 {
			t.Fatalf("expected 3 days, got %d", len(p.Meals.Days))
		}
		if !p.CreatedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
			t.Fatalf("timestamps not set from now")
		}
	})

	tests := []struct {
		name    string
		owner   uuid.UUID
		plan    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"reversed dates", uuid.New(), "", end, start, invdomain.ErrInvalidDateRange},
		{"long name", uuid.New(), strings.Repeat("x", 256), start, end, tripdomain.ErrInvalidPlanName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPlan(tt.owner, tt.plan, tt.start, tt.end, now); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("nil owner", func(t *testing.T) {
		if _, err := NewPlan(uuid.Nil, "", start, end, now); err == nil {
			t.Fatal("expected error")
		}
	})
}
