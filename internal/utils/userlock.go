package utils

import "sync"

// UserLocker serializes operations per user. Reward eligibility checks are
// read-then-write sequences (daily quiz cap, is-rewarded flags); two rapid
// requests from the same user must not interleave them. Operations across
// different users proceed concurrently. Entries are reference counted and
// removed once the last holder unlocks, so the map tracks only users with
// an operation in flight.
type UserLocker struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

// NewUserLocker creates a new UserLocker
func NewUserLocker() *UserLocker {
	return &UserLocker{locks: make(map[string]*userLock)}
}

// Lock acquires the lock for the given key and returns the unlock function.
func (l *UserLocker) Lock(key string) func() {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &userLock{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}
