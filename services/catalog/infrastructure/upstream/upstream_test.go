package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ghuser/packstack/services/catalog/domain"
)

func newDoer(srv *httptest.Server) *Doer {
	return &Doer{Client: srv.Client(), Metrics: NewMetrics(), Source: "test"}
}

func get(url string) func(context.Context) (*http.Request, error) {
	return func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	}
}

func TestDoer_Do(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []int
		wantErr   error
		wantCalls int32
	}{
		{"ok", []int{200}, nil, 1},
		{"not found is final", []int{404}, domain.ErrProductNotFound, 1},
		{"client error is final", []int{400}, domain.ErrUpstream, 1},
		{"server error retried then ok", []int{503, 502, 200}, nil, 3},
		{"server error exhausts attempts", []int{500, 500, 500}, domain.ErrUpstream, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				n := calls.Add(1)
				w.WriteHeader(tt.statuses[n-1])
				_, _ = w.Write([]byte(`{"ok":true}`))
			}))
			defer srv.Close()

			body, err := newDoer(srv).Do(context.Background(), "search", get(srv.URL))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			} else if err != nil || string(body) != `{"ok":true}` {
				t.Fatalf("unexpected result %q, %v", body, err)
			}
			if got := calls.Load(); got != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestDoer_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	d := &Doer{Client: http.DefaultClient, Source: "test"}
	if _, err := d.Do(context.Background(), "search", get(url)); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
