package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestWithOwnerID_OwnerIDFromCtx(t *testing.T) {
	ownerID := uuid.New()
	ctx := WithOwnerID(context.Background(), ownerID)

	got, err := OwnerIDFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ownerID {
		t.Fatalf("expected %v, got %v", ownerID, got)
	}
}

func TestOwnerIDFromCtx_EmptyContext(t *testing.T) {
	_, err := OwnerIDFromCtx(context.Background())
	if !errors.Is(err, ErrOwnerIDNotFound) {
		t.Fatalf("expected ErrOwnerIDNotFound, got %v", err)
	}
}

func TestOwnerIDFromCtx_NilUUID(t *testing.T) {
	ctx := WithOwnerID(context.Background(), uuid.Nil)
	_, err := OwnerIDFromCtx(ctx)
	if !errors.Is(err, ErrOwnerIDNotFound) {
		t.Fatalf("expected ErrOwnerIDNotFound for uuid.Nil, got %v", err)
	}
}

func TestOwnerIDFromCtx_Isolation(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()

	got1, _ := OwnerIDFromCtx(WithOwnerID(context.Background(), id1))
	got2, _ := OwnerIDFromCtx(WithOwnerID(context.Background(), id2))

	if got1 != id1 || got2 != id2 {
		t.Fatalf("contexts leaked: got %v and %v", got1, got2)
	}
}
