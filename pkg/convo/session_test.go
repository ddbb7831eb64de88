package convo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	if got, err := store.Get(ctx, "missing"); err != nil || got != nil {
		t.Fatalf("Get(missing) = %v, %v; want nil, nil", got, err)
	}

	s := NewSessionState("conv-1")
	s.Memory.Name = "Rajesh"
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(ctx, "conv-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Memory.Name != "Rajesh" {
		t.Errorf("round trip lost state: %+v", got)
	}

	if err := store.Delete(ctx, "conv-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := store.Get(ctx, "conv-1"); got != nil {
		t.Error("session survived delete")
	}
}

func TestMemoryStoreRejectsInvalid(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	if err := store.Save(ctx, nil); err == nil {
		t.Error("expected error for nil state")
	}
	if err := store.Save(ctx, &SessionState{}); err == nil {
		t.Error("expected error for empty session ID")
	}
}

func TestMemoryStoreTTLEviction(t *testing.T) {
	store := NewMemoryStore(WithMaxAge(10*time.Millisecond), WithCleanupInterval(5*time.Millisecond))
	defer store.Close()
	ctx := context.Background()

	s := NewSessionState("short-lived")
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if got, _ := store.Get(ctx, "short-lived"); got != nil {
		t.Error("expired session still readable")
	}
	if store.Len() != 0 {
		t.Errorf("store len = %d after cleanup, want 0", store.Len())
	}
}

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	if got, err := store.Get(ctx, "missing"); err != nil || got != nil {
		t.Fatalf("Get(missing) = %v, %v; want nil, nil", got, err)
	}

	s := NewSessionState("conv-redis")
	s.Memory.Name = "Priya"
	s.Memory.OTPRequests = 2
	s.RecordResponse("Haan ji? Who is calling?", TypeStall)
	s.AskedCategories = append(s.AskedCategories, CategoryEmployeeID)

	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(ctx, "conv-redis")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Memory.Name != "Priya" || got.Memory.OTPRequests != 2 {
		t.Errorf("memory lost in round trip: %+v", got.Memory)
	}
	if !got.lineUsed("Haan ji? Who is calling?") {
		t.Error("used-line set lost in round trip")
	}
	if len(got.AskedCategories) != 1 || got.AskedCategories[0] != CategoryEmployeeID {
		t.Errorf("asked categories lost: %v", got.AskedCategories)
	}
	if got.LastResponseType != TypeStall {
		t.Errorf("last response type = %s", got.LastResponseType)
	}
}

func TestRedisStoreTTL(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	s := NewSessionState("conv-ttl")
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	if got, err := store.Get(ctx, "conv-ttl"); err != nil || got != nil {
		t.Errorf("expired session = %v, %v; want nil, nil", got, err)
	}
}
