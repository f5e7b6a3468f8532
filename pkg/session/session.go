// Package session defines the storage a protected form keeps its CSRF token
// in, plus an in-memory implementation.
package session

import (
	"sync"
	"time"
)

// Store is the minimal session contract.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Destroy()
}

// Memory is a mutex guarded in-memory Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]any)}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok
}

// Set stores value under key.
func (m *Memory) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]any)
	}
	m.values[key] = value
}

// Destroy removes every value.
func (m *Memory) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]any)
}

// KeyedOption configures a Keyed registry.
type KeyedOption func(*Keyed)

// WithIdleTimeout drops sessions not used for d. Zero keeps them forever.
func WithIdleTimeout(d time.Duration) KeyedOption {
	return func(k *Keyed) {
		k.idle = d
	}
}

// WithMaxSessions caps the number of live sessions, evicting the least
// recently used one when a new session would exceed n. Zero means no cap.
func WithMaxSessions(n int) KeyedOption {
	return func(k *Keyed) {
		k.max = n
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) KeyedOption {
	return func(k *Keyed) {
		if now != nil {
			k.now = now
		}
	}
}

type keyedEntry struct {
	store    *Memory
	lastUsed time.Time
}

// Keyed hands out one Memory store per session identifier, as a server does
// for cookie backed sessions.
type Keyed struct {
	mu     sync.Mutex
	stores map[string]*keyedEntry
	idle   time.Duration
	max    int
	now    func() time.Time
}

// NewKeyed returns an empty Keyed registry.
func NewKeyed(opts ...KeyedOption) *Keyed {
	k := &Keyed{stores: make(map[string]*keyedEntry), now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(k)
		}
	}
	return k
}

// Session returns the store for id, creating it on first use. Expired
// sessions are dropped first.
func (k *Keyed) Session(id string) *Memory {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	k.expire(now)
	entry, ok := k.stores[id]
	if !ok {
		if k.max > 0 && len(k.stores) >= k.max {
			k.evictOldest()
		}
		entry = &keyedEntry{store: NewMemory()}
		k.stores[id] = entry
	}
	entry.lastUsed = now
	return entry.store
}

// Len reports the number of live sessions.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.stores)
}

func (k *Keyed) expire(now time.Time) {
	if k.idle <= 0 {
		return
	}
	for id, entry := range k.stores {
		if now.Sub(entry.lastUsed) >= k.idle {
			entry.store.Destroy()
			delete(k.stores, id)
		}
	}
}

func (k *Keyed) evictOldest() {
	var (
		oldestID string
		oldest   *keyedEntry
	)
	for id, entry := range k.stores {
		if oldest == nil || entry.lastUsed.Before(oldest.lastUsed) {
			oldestID, oldest = id, entry
		}
	}
	if oldest != nil {
		oldest.store.Destroy()
		delete(k.stores, oldestID)
	}
}
