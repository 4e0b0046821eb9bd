package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreFirstHitAllowed(t *testing.T) {
	s := NewMemoryStore(Window)

	limited, err := s.Hit(context.Background(), "203.0.113.7")
	if err != nil {
		t.Fatalf("Hit() error: %v", err)
	}
	if limited {
		t.Error("first hit should not be limited")
	}
}

func TestMemoryStoreRepeatHitLimited(t *testing.T) {
	s := NewMemoryStore(Window)
	ctx := context.Background()

	if _, err := s.Hit(ctx, "203.0.113.7"); err != nil {
		t.Fatalf("Hit() error: %v", err)
	}
	limited, err := s.Hit(ctx, "203.0.113.7")
	if err != nil {
		t.Fatalf("Hit() error: %v", err)
	}
	if !limited {
		t.Error("second hit within the window should be limited")
	}
}

func TestMemoryStoreDistinctIPsIndependent(t *testing.T) {
	s := NewMemoryStore(Window)
	ctx := context.Background()

	s.Hit(ctx, "203.0.113.7")
	limited, _ := s.Hit(ctx, "198.51.100.1")
	if limited {
		t.Error("different IP should not be limited")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(20 * time.Millisecond)
	ctx := context.Background()

	s.Hit(ctx, "203.0.113.7")
	time.Sleep(40 * time.Millisecond)

	limited, err := s.Hit(ctx, "203.0.113.7")
	if err != nil {
		t.Fatalf("Hit() error: %v", err)
	}
	if limited {
		t.Error("hit after expiry should not be limited")
	}
}
