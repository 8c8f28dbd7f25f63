package database

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/ghuser/packstack/pkg/config"
	"github.com/ghuser/packstack/pkg/logger"
)

func TestNewPool_InvalidURL(t *testing.T) {
	log := logger.New(&config.Config{LogLevel: "error"})
	if _, err := NewPool(context.Background(), "postgres://localhost:notaport/packstack", log); err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

// Integration tests: skipped unless DATABASE_URL is set.
func TestDatabaseIntegration(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	log := logger.New(&config.Config{LogLevel: "error"})

	db, err := NewPool(ctx, url, log)
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	defer db.Close()

	t.Run("Ping", func(t *testing.T) {
		if err := db.Ping(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("WithTx commits", func(t *testing.T) {
		var got int
		err := db.WithTx(ctx, func(tx *sql.Tx) error {
			return tx.QueryRowContext(ctx, "SELECT 1").Scan(&got)
		})
		if err != nil || got != 1 {
			t.Fatalf("WithTx: got %d, err %v", got, err)
		}
	})

	t.Run("WithTx returns fn error", func(t *testing.T) {
		sentinel := errors.New("boom")
		err := db.WithTx(ctx, func(*sql.Tx) error { return sentinel })
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel, got %v", err)
		}
	})
}
