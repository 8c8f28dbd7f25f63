package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/ghuser/packstack/services/inventory/domain"
)

func TestNewItemName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "single character", in: "a", want: "a"},
		{name: "trims surrounding space", in: "  Copper Spur UL2\n", want: "Copper Spur UL2"},
		{name: "collapses inner runs", in: "Big \t Agnes", want: "Big Agnes"},
		{name: "255 runes", in: strings.Repeat("x", 255), want: strings.Repeat("x", 255)},
		{name: "255 multibyte runes", in: strings.Repeat("é", 255), want: strings.Repeat("é", 255)},
		{name: "length counted after trimming", in: " " + strings.Repeat("x", 255) + " ", want: strings.Repeat("x", 255)},
		{name: "empty", in: "", wantErr: true},
		{name: "only whitespace", in: " \t ", wantErr: true},
		{name: "256 runes", in: strings.Repeat("x", 256), wantErr: true},
		{name: "control character", in: "Stove\x00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewItemName(tt.in)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidItemName) {
					t.Fatalf("expected ErrInvalidItemName, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
