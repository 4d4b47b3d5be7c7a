package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeCmdable implements the commands this package uses. Any other call
// panics through the nil embedded interface.
type fakeCmdable struct {
	redis.Cmdable
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{data: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeCmdable) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeCmdable) SetNX(_ context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd {
	if f.setErr != nil {
		return redis.NewBoolResult(false, f.setErr)
	}
	if _, exists := f.data[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = value.(string)
	f.ttls[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func TestIdempotencyStore_RememberThenLookup(t *testing.T) {
	fake := newFakeCmdable()
	store := NewIdempotencyStore(fake, 0)
	ctx := context.Background()

	if _, found, err := store.Lookup(ctx, "k1"); err != nil || found {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}

	if err := store.Remember(ctx, "k1", "p1"); err != nil {
		t.Fatalf("Remember returned error: %v", err)
	}
	if fake.ttls["idem:productos:k1"] != 24*time.Hour {
		t.Fatalf("expected default 24h ttl, got %v", fake.ttls["idem:productos:k1"])
	}

	id, found, err := store.Lookup(ctx, "k1")
	if err != nil || !found || id != "p1" {
		t.Fatalf("expected p1, got %q found=%v err=%v", id, found, err)
	}
}

func TestIdempotencyStore_FirstWriterWins(t *testing.T) {
	store := NewIdempotencyStore(newFakeCmdable(), time.Hour)
	ctx := context.Background()

	_ = store.Remember(ctx, "k1", "p1")
	_ = store.Remember(ctx, "k1", "p2")

	id, _, _ := store.Lookup(ctx, "k1")
	if id != "p1" {
		t.Fatalf("expected first mapping to be kept, got %q", id)
	}
}

func TestIdempotencyStore_WrapsErrors(t *testing.T) {
	fake := newFakeCmdable()
	down := errors.New("connection refused")
	fake.getErr = down
	fake.setErr = down
	store := NewIdempotencyStore(fake, time.Hour)

	if _, _, err := store.Lookup(context.Background(), "k1"); !errors.Is(err, down) {
		t.Fatalf("expected wrapped lookup error, got %v", err)
	}
	if err := store.Remember(context.Background(), "k1", "p1"); !errors.Is(err, down) {
		t.Fatalf("expected wrapped remember error, got %v", err)
	}
}

func (f *fakeCmdable) Ping(context.Context) *redis.StatusCmd {
	if f.getErr != nil {
		return redis.NewStatusResult("", f.getErr)
	}
	return redis.NewStatusResult("PONG", nil)
}

func TestConnect_EmptyAddress(t *testing.T) {
	if _, err := Connect(context.Background(), Config{}); !errors.Is(err, errNoAddr) {
		t.Fatalf("expected errNoAddr, got %v", err)
	}
}

func TestChecker(t *testing.T) {
	fake := newFakeCmdable()
	check := Checker(fake)

	if err := check(context.Background()); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}
	fake.getErr = errors.New("down")
	if err := check(context.Background()); err == nil {
		t.Fatal("expected error when redis is down")
	}
}
