package throttle

import (
	"context"
	"testing"
	"time"
)

func newTestStore() *BucketStore[string] {
	s := NewBucketStore[string](context.Background(), time.Minute, time.Hour)
	s.SetBucketGroup("check-access", &BucketConf{
		Burst:     3,
		Increment: 1,
		Period:    time.Minute,
	})
	return s
}

func TestAllowConsumesTokens(t *testing.T) {
	s := newTestStore()
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if !s.Allow("check-access", "10.0.0.1", now) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if s.Allow("check-access", "10.0.0.1", now) {
		t.Fatal("request beyond burst should be blocked")
	}
}

func TestAllowRefillsAfterPeriod(t *testing.T) {
	s := newTestStore()
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s.Allow("check-access", "10.0.0.1", now)
	}
	if s.Allow("check-access", "10.0.0.1", now.Add(30*time.Second)) {
		t.Fatal("expected block before refill")
	}
	if !s.Allow("check-access", "10.0.0.1", now.Add(time.Minute)) {
		t.Fatal("expected allow after refill period")
	}
}

func TestAllowIsolatesClients(t *testing.T) {
	s := newTestStore()
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s.Allow("check-access", "10.0.0.1", now)
	}
	if !s.Allow("check-access", "10.0.0.2", now) {
		t.Fatal("other client should not be affected")
	}
}

func TestUnknownGroupBlocked(t *testing.T) {
	s := newTestStore()
	if s.Allow("nonexistent", "10.0.0.1", time.Now()) {
		t.Fatal("unknown group should always block")
	}
}

func TestCleanupRemovesStaleBuckets(t *testing.T) {
	s := newTestStore()
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	s.Allow("check-access", "10.0.0.1", now)
	s.Cleanup(now.Add(2 * time.Hour))
	if _, ok := s.GetBucket("check-access", "10.0.0.1"); ok {
		t.Fatal("stale bucket should be removed")
	}
}
