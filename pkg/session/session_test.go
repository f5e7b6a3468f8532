package session_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-form/pkg/session"
)

func TestMemory(t *testing.T) {
	store := session.NewMemory()
	if _, ok := store.Get("token"); ok {
		t.Fatalf("expected empty store")
	}

	store.Set("token", "123456")
	got, ok := store.Get("token")
	if !ok || got != "123456" {
		t.Fatalf("expected stored token, got %v (%v)", got, ok)
	}

	store.Destroy()
	if _, ok := store.Get("token"); ok {
		t.Fatalf("expected destroy to clear values")
	}
}

func TestKeyed(t *testing.T) {
	keyed := session.NewKeyed()
	first := keyed.Session("a")
	first.Set("k", 1)

	if keyed.Session("a") != first {
		t.Fatalf("expected the same store for the same id")
	}
	if _, ok := keyed.Session("b").Get("k"); ok {
		t.Fatalf("expected sessions to be isolated")
	}
	if keyed.Len() != 2 {
		t.Fatalf("expected two sessions, got %d", keyed.Len())
	}
}

func TestKeyed_IdleTimeout(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	keyed := session.NewKeyed(
		session.WithIdleTimeout(time.Minute),
		session.WithClock(func() time.Time { return now }),
	)

	keyed.Session("a").Set("k", 1)
	now = now.Add(30 * time.Second)
	keyed.Session("b")
	if keyed.Len() != 2 {
		t.Fatalf("expected two sessions, got %d", keyed.Len())
	}

	now = now.Add(45 * time.Second)
	if _, ok := keyed.Session("b").Get("k"); ok {
		t.Fatalf("expected b to stay empty")
	}
	if keyed.Len() != 1 {
		t.Fatalf("expected idle session a to be dropped, got %d sessions", keyed.Len())
	}
	if _, ok := keyed.Session("a").Get("k"); ok {
		t.Fatalf("expected a to come back as a fresh session")
	}
}

func TestKeyed_MaxSessions(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	keyed := session.NewKeyed(
		session.WithMaxSessions(2),
		session.WithClock(func() time.Time { return now }),
	)

	for _, id := range []string{"a", "b", "c", "d"} {
		now = now.Add(time.Second)
		keyed.Session(id).Set("id", id)
		if id == "c" {
			now = now.Add(time.Second)
			keyed.Session("b")
		}
	}

	if keyed.Len() != 2 {
		t.Fatalf("expected the cap to hold two sessions, got %d", keyed.Len())
	}
	if got, ok := keyed.Session("b").Get("id"); !ok || got != "b" {
		t.Fatalf("expected recently used b to survive, got %v (%v)", got, ok)
	}
}
