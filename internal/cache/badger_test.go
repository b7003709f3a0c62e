package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestBadger(t *testing.T) *BadgerStore {
	t.Helper()

	store, err := OpenBadger(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("failed to open badger store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestBadgerStore_SetGet(t *testing.T) {
	store := newTestBadger(t)
	ctx := context.Background()

	if err := store.Set(ctx, "k1", []byte("v1"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, ok, err := store.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok || string(value) != "v1" {
		t.Errorf("expected hit with v1, got ok=%v value=%q", ok, value)
	}

	_, ok, err = store.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Error("expected miss for unknown key")
	}
}

func TestBadgerStore_DeleteByPrefix(t *testing.T) {
	store := newTestBadger(t)
	ctx := context.Background()

	store.Set(ctx, "recommendations:frontend:10:0", []byte("a"), time.Minute)
	store.Set(ctx, "recommendations:qa:10:0", []byte("b"), time.Minute)
	store.Set(ctx, "total_recommendations:qa", []byte("c"), time.Minute)

	if err := store.DeleteByPrefix(ctx, "recommendations:"); err != nil {
		t.Fatalf("delete by prefix failed: %v", err)
	}

	if _, ok, _ := store.Get(ctx, "recommendations:qa:10:0"); ok {
		t.Error("expected prefixed entry deleted")
	}
	if _, ok, _ := store.Get(ctx, "total_recommendations:qa"); !ok {
		t.Error("expected other namespace to survive")
	}
}

func TestBadgerStore_FlushAll(t *testing.T) {
	store := newTestBadger(t)
	ctx := context.Background()

	store.Set(ctx, "a", []byte("1"), time.Minute)
	store.Set(ctx, "b", []byte("2"), time.Minute)

	if err := store.FlushAll(ctx); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	if _, ok, _ := store.Get(ctx, "a"); ok {
		t.Error("expected empty store after flush")
	}
}
