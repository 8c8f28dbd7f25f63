package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ghuser/packstack/services/recommendation/domain"
)

func TestClient_Complete(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "{\"categories\": []}"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/v1/", APIKey: "sk-test", Model: "gpt-4o-mini", Timeout: 5 * time.Second})
	reply, err := c.Complete(context.Background(), "sys", "usr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != `{"categories": []}` {
		t.Fatalf("reply = %q", reply)
	}
	if got.Model != "gpt-4o-mini" || len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Content != "usr" {
		t.Fatalf("unexpected request: %+v", got)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_object" {
		t.Fatalf("expected json_object response format, got %+v", got.ResponseFormat)
	}
}

func TestClient_CompleteErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		apiKey  string
		wantErr error
	}{
		{"no key", 200, `{}`, "", domain.ErrRecommenderNotConfigured},
		{"rate limited", 429, `{"error": "slow down"}`, "k", domain.ErrRecommenderUnavailable},
		{"no choices", 200, `{"choices": []}`, "k", domain.ErrRecommenderUnavailable},
		{"garbage", 200, `<html>`, "k", domain.ErrRecommenderUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(Config{BaseURL: srv.URL, APIKey: tt.apiKey, Model: "m", Timeout: time.Second})
			if _, err := c.Complete(context.Background(), "s", "u"); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
