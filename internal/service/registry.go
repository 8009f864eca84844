package service

import (
	"sync"

	"anonpairbot/internal/core"
)

// Registry holds the process-local per-user cursors and the pairing lock.
// Cursors are a cache over store state and are rebuilt on demand after a
// restart; the pairing lock serializes every read-then-act sequence against
// the shared pool of session-free users (candidate selection, session
// creation, termination) so concurrent requests cannot double-book a user.
type Registry struct {
	mu      sync.RWMutex
	cursors map[int64]core.State

	pairing sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		cursors: make(map[int64]core.State),
	}
}

func (r *Registry) Cursor(telegramID int64) (core.State, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.cursors[telegramID]
	return st, ok
}

func (r *Registry) SetCursor(telegramID int64, st core.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursors[telegramID] = st
}

func (r *Registry) DropCursor(telegramID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cursors, telegramID)
}

func (r *Registry) LockPairing()   { r.pairing.Lock() }
func (r *Registry) UnlockPairing() { r.pairing.Unlock() }
