package usecase

import (
	"sort"
	"sync"
)

// accountLocker serializes transfers that touch overlapping account sets.
// Locks are always taken in lexicographic reference order so two transfers
// over intersecting accounts can never deadlock.
type accountLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocker() *accountLocker {
	return &accountLocker{locks: make(map[string]*sync.Mutex)}
}

// lockAll acquires the lock of every distinct reference in sorted order and
// returns a func releasing them in reverse order. Duplicate references
// collapse to one acquisition; the mutexes are not reentrant.
func (l *accountLocker) lockAll(refs []string) (unlock func()) {
	unique := make(map[string]bool, len(refs))

	var sorted []string
	for _, ref := range refs {
		if !unique[ref] {
			unique[ref] = true
			sorted = append(sorted, ref)
		}
	}

	sort.Strings(sorted)

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, ref := range sorted {
		mu := l.lockFor(ref)
		mu.Lock()
		held = append(held, mu)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (l *accountLocker) lockFor(ref string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	mu, ok := l.locks[ref]
	if !ok {
		mu = &sync.Mutex{}
		l.locks[ref] = mu
	}

	return mu
}
