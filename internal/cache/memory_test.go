package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	if err := store.Set(ctx, "k1", []byte("v1"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, ok, err := store.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected hit for fresh entry")
	}
	if string(value) != "v1" {
		t.Errorf("expected v1, got %q", value)
	}
}

func TestMemoryStore_MissForUnknownKey(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	_, ok, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Error("expected miss for unknown key")
	}
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	if err := store.Set(ctx, "k1", []byte("v1"), 10*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	_, ok, err := store.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Error("expected expired entry to miss")
	}
	if store.Len() != 0 {
		t.Errorf("expected expired entry to be dropped on read, have %d", store.Len())
	}
}

func TestMemoryStore_DeleteByPrefix(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "recommendations:frontend:10:0", []byte("a"), time.Minute)
	store.Set(ctx, "recommendations:backend:10:0", []byte("b"), time.Minute)
	store.Set(ctx, "tool_score:t1:frontend", []byte("c"), time.Minute)

	if err := store.DeleteByPrefix(ctx, "recommendations:"); err != nil {
		t.Fatalf("delete by prefix failed: %v", err)
	}

	if _, ok, _ := store.Get(ctx, "recommendations:frontend:10:0"); ok {
		t.Error("expected prefixed entry deleted")
	}
	if _, ok, _ := store.Get(ctx, "tool_score:t1:frontend"); !ok {
		t.Error("expected other namespace to survive prefix delete")
	}
}

func TestMemoryStore_FlushAll(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "a", []byte("1"), time.Minute)
	store.Set(ctx, "b", []byte("2"), time.Minute)

	if err := store.FlushAll(ctx); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store after flush, have %d entries", store.Len())
	}
}

func TestMemoryStore_SupportsPatternDelete(t *testing.T) {
	if !NewMemoryStore().SupportsPatternDelete() {
		t.Error("memory store should support pattern deletes")
	}
}
