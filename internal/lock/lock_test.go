package lock

import (
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLock(t *testing.T) (*MonthLock, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewMonthLock(client, time.Minute, time.Second), mr
}

func TestLockRejectsSecondHolder(t *testing.T) {
	t.Parallel()
	l, mr := newTestLock(t)
	key := "schedule_generate_2026_06"

	unlock, err := l.Lock(key)
	if err != nil {
		t.Fatalf("Lock error: %v", err)
	}
	if !mr.Exists(key) {
		t.Fatal("lock key not set")
	}
	if ttl := mr.TTL(key); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("unexpected ttl %v", ttl)
	}

	if _, err := l.Lock(key); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}

	unlock()
	if mr.Exists(key) {
		t.Fatal("lock key kept after unlock")
	}

	again, err := l.Lock(key)
	if err != nil {
		t.Fatalf("Lock after unlock error: %v", err)
	}
	again()
}

func TestUnlockKeepsOtherHoldersLock(t *testing.T) {
	t.Parallel()
	l, mr := newTestLock(t)
	key := "schedule_generate_2026_07"

	staleUnlock, err := l.Lock(key)
	if err != nil {
		t.Fatalf("Lock error: %v", err)
	}

	// 첫 잠금이 만료된 뒤 다른 요청이 잠근다
	mr.FastForward(2 * time.Minute)
	unlock, err := l.Lock(key)
	if err != nil {
		t.Fatalf("Lock after expiry error: %v", err)
	}
	token, err := mr.Get(key)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}

	staleUnlock()
	got, err := mr.Get(key)
	if err != nil {
		t.Fatalf("lock deleted by stale holder: %v", err)
	}
	if got != token {
		t.Fatalf("token = %q, want %q", got, token)
	}
	if _, err := l.Lock(key); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}

	unlock()
	if mr.Exists(key) {
		t.Fatal("lock key kept after unlock")
	}
}

func TestLockKeysAreIndependent(t *testing.T) {
	t.Parallel()
	l, _ := newTestLock(t)

	unlockJune, err := l.Lock("schedule_generate_2026_06")
	if err != nil {
		t.Fatalf("Lock error: %v", err)
	}
	defer unlockJune()

	unlockJuly, err := l.Lock("schedule_generate_2026_07")
	if err != nil {
		t.Fatalf("Lock for another month error: %v", err)
	}
	unlockJuly()
}
